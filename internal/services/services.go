package services

import (
	"github.com/terraenergy/prospect-quote-api/internal/jobs"
	"github.com/terraenergy/prospect-quote-api/internal/repository"
	"github.com/terraenergy/prospect-quote-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Quote         *QuoteService
	QuoteDocument *QuoteDocumentService
	Job           *JobService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, store storage.DocumentStore, renderer DocumentRenderer) *Services {
	return &Services{
		Quote:         NewQuoteService(NewTariffCatalog(repos.Tariff), renderer, store, repos.QuoteDocument, worker),
		QuoteDocument: NewQuoteDocumentService(repos.QuoteDocument),
		Job:           NewJobService(worker),
	}
}
