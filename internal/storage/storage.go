package storage

import (
	"context"

	"github.com/terraenergy/prospect-quote-api/internal/models"
)

// ContentTypePDF is the MIME type of generated quotes.
const ContentTypePDF = "application/pdf"

// DocumentStore persists generated documents under a caller-chosen key.
type DocumentStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (*models.StoredDocument, error)
}
