package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Tariff        TariffRepository
	QuoteDocument QuoteDocumentRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Tariff:        NewTariffRepository(db),
		QuoteDocument: NewQuoteDocumentRepository(db),
	}
}
