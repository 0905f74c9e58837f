package models

import "time"

// Quote generation status constants
const (
	GenerationStatusReceived   = "received"
	GenerationStatusNormalized = "normalized"
	GenerationStatusValidated  = "validated"
	GenerationStatusEnriched   = "enriched"
	GenerationStatusRendered   = "rendered"
	GenerationStatusStored     = "stored"
	GenerationStatusFailed     = "failed"
)

// QuoteGeneration tracks one run of the quote pipeline.
type QuoteGeneration struct {
	ID          string
	Status      string
	FailedStage string
	StartedAt   time.Time
}

// IsTerminal returns true once the run has stored a document or failed
func (g *QuoteGeneration) IsTerminal() bool {
	return g.Status == GenerationStatusStored || g.Status == GenerationStatusFailed
}
