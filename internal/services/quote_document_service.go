package services

import (
	"context"
	"fmt"
	"time"

	"github.com/terraenergy/prospect-quote-api/internal/models"
	"github.com/terraenergy/prospect-quote-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

// exportPageSize bounds each registry read during an export.
const exportPageSize = 500

type QuoteDocumentService struct {
	repo repository.QuoteDocumentRepository
}

func NewQuoteDocumentService(repo repository.QuoteDocumentRepository) *QuoteDocumentService {
	return &QuoteDocumentService{repo: repo}
}

// List returns one page of generated documents
func (s *QuoteDocumentService) List(ctx context.Context, query *repository.ListQuery) ([]models.QuoteDocument, int64, error) {
	return s.repo.List(ctx, query)
}

// ExportXLSX writes every registry row matching search to a spreadsheet.
func (s *QuoteDocumentService) ExportXLSX(ctx context.Context, search string) ([]byte, string, error) {
	var docs []models.QuoteDocument

	query := &repository.ListQuery{Page: 1, PerPage: exportPageSize, Search: search}
	for {
		page, total, err := s.repo.List(ctx, query)
		if err != nil {
			return nil, "", err
		}
		docs = append(docs, page...)
		if len(page) < query.PerPage || int64(len(docs)) >= total {
			break
		}
		query.Page++
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Cotizaciones"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#99CA3C"}, Pattern: 1},
	})

	headers := []string{"Fecha", "Prospecto", "Terralink", "Cliente", "Tarifa", "Bucket", "Llave", "URL", "Tamaño (bytes)", "Solicitado por"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for i, d := range docs {
		row := i + 2
		values := []interface{}{
			d.CreatedAt.Format("2006-01-02 15:04"),
			d.ProspectID,
			d.TerralinkID,
			d.ClientName,
			d.TariffType,
			d.Bucket,
			d.StorageKey,
			d.URL,
			d.SizeBytes,
			d.RequestedBy,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "D", "D", 30)
	_ = f.SetColWidth(sheet, "G", "H", 50)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("cotizaciones_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
