package handlers

import (
	"github.com/terraenergy/prospect-quote-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health        *HealthHandler
	Quote         *QuoteHandler
	QuoteDocument *QuoteDocumentHandler
	Job           *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(),
		Quote:         NewQuoteHandler(svcs.Quote),
		QuoteDocument: NewQuoteDocumentHandler(svcs.QuoteDocument),
		Job:           NewJobHandler(svcs.Job),
	}
}
