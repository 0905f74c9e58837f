package repository

import (
	"context"
	"strings"

	"github.com/terraenergy/prospect-quote-api/internal/models"
	"gorm.io/gorm"
)

// ListQuery holds pagination and filter parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
	}
}

func (q *ListQuery) offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}

type QuoteDocumentRepository interface {
	Create(ctx context.Context, doc *models.QuoteDocument) error
	List(ctx context.Context, query *ListQuery) ([]models.QuoteDocument, int64, error)
}

type quoteDocumentRepository struct {
	db *gorm.DB
}

func NewQuoteDocumentRepository(db *gorm.DB) QuoteDocumentRepository {
	return &quoteDocumentRepository{db: db}
}

func (r *quoteDocumentRepository) Create(ctx context.Context, doc *models.QuoteDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// List returns the newest documents first. Search matches prospect, terralink id or client name.
func (r *quoteDocumentRepository) List(ctx context.Context, query *ListQuery) ([]models.QuoteDocument, int64, error) {
	var docs []models.QuoteDocument
	var total int64

	db := r.db.WithContext(ctx).Model(&models.QuoteDocument{})

	if search := strings.TrimSpace(query.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(prospect_id) LIKE ? OR LOWER(terralink_id) LIKE ? OR LOWER(client_name) LIKE ?", like, like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").
		Offset(query.offset()).
		Limit(query.PerPage).
		Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}
