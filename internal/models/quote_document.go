package models

import "time"

// QuoteDocument records a generated quote PDF and where it was stored.
type QuoteDocument struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	GenerationID string    `gorm:"size:36;uniqueIndex;not null" json:"generation_id"`
	ProspectID   string    `gorm:"size:64;index" json:"prospect_id"`
	TerralinkID  string    `gorm:"size:64;index;not null" json:"terralink_id"`
	ClientName   string    `gorm:"size:255" json:"client_name"`
	TariffType   string    `gorm:"size:20" json:"tariff_type"`
	Bucket       string    `gorm:"size:255;not null" json:"bucket"`
	StorageKey   string    `gorm:"size:512;not null" json:"key"`
	URL          string    `gorm:"size:1024" json:"url"`
	SizeBytes    int64     `json:"size_bytes"`
	RequestedBy  string    `gorm:"size:255" json:"requested_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for QuoteDocument
func (QuoteDocument) TableName() string {
	return "prospect_quote_documents"
}

// StoredDocument is the reference returned to clients after an upload.
type StoredDocument struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	URL    string `json:"url"`
}
