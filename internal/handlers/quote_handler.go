package handlers

import (
	"context"
	"errors"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/terraenergy/prospect-quote-api/internal/middleware"
	"github.com/terraenergy/prospect-quote-api/internal/services"
	"github.com/terraenergy/prospect-quote-api/pkg/logger"
)

const (
	quoteSuccessMessage = "PDF de cotización generado exitosamente."
	quoteFailureMessage = "Error al generar la cotización del prospecto."
)

// QuoteGenerator runs the quote pipeline for a decoded request body.
type QuoteGenerator interface {
	Generate(ctx context.Context, raw any, requestedBy string) (*services.GenerateResult, error)
}

type QuoteHandler struct {
	quoteService QuoteGenerator
}

func NewQuoteHandler(quoteService QuoteGenerator) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// @Summary Generate prospect quote PDF
// @Description Normalizes the quote payload, resolves the CFE tariff, renders the PDF and uploads it
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body object true "Quote payload: name, last_name, prospect_id, terralink_id and quote_details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Security BearerAuth
// @Router /prospect-quotes/pdf [post]
func (h *QuoteHandler) CreatePDF(c *gin.Context) {
	var body map[string]any
	if err := BindNestedOrFlat(c, "prospect_quote", &body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": quoteFailureMessage, "error": err.Error()})
		return
	}

	result, err := h.quoteService.Generate(c.Request.Context(), body, middleware.GetUserEmail(c))
	if err != nil {
		status := quoteErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Quote generation error", "request_id", middleware.GetRequestID(c), "error", err)
			if hub := sentrygin.GetHubFromContext(c); hub != nil {
				hub.CaptureException(err)
			}
		}
		c.JSON(status, gin.H{"message": quoteFailureMessage, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       quoteSuccessMessage,
		"data":          result.Document,
		"generation_id": result.GenerationID,
	})
}

func quoteErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrIncompleteInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrTariffNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
