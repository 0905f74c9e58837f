package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/terraenergy/prospect-quote-api/internal/models"
	"github.com/terraenergy/prospect-quote-api/internal/repository"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxPerPage caps registry page size.
const maxPerPage = 100

type QuoteDocumentReader interface {
	List(ctx context.Context, query *repository.ListQuery) ([]models.QuoteDocument, int64, error)
	ExportXLSX(ctx context.Context, search string) ([]byte, string, error)
}

type QuoteDocumentHandler struct {
	documentService QuoteDocumentReader
}

func NewQuoteDocumentHandler(documentService QuoteDocumentReader) *QuoteDocumentHandler {
	return &QuoteDocumentHandler{documentService: documentService}
}

// @Summary List generated quotes
// @Description Get a paginated list of generated quote PDFs, newest first
// @Tags Quotes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Prospect, terralink id or client name"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /prospect-quotes/documents [get]
func (h *QuoteDocumentHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search_term")

	if query.Page < 1 {
		query.Page = 1
	}
	switch {
	case query.PerPage < 1:
		query.PerPage = 20
	case query.PerPage > maxPerPage:
		query.PerPage = maxPerPage
	}

	docs, total, err := h.documentService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if docs == nil {
		docs = []models.QuoteDocument{}
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": docs,
		"pagination": gin.H{
			"page":     query.Page,
			"per_page": query.PerPage,
			"total":    total,
		},
	})
}

// @Summary Export generated quotes
// @Description Download every generated quote matching the search as an XLSX spreadsheet
// @Tags Quotes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search_term query string false "Prospect, terralink id or client name"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /prospect-quotes/documents/export [get]
func (h *QuoteDocumentHandler) Export(c *gin.Context) {
	data, filename, err := h.documentService.ExportXLSX(c.Request.Context(), c.Query("search_term"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al exportar las cotizaciones"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentTypeXLSX, data)
}
