package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/terraenergy/prospect-quote-api/internal/models"
)

// Pipeline events
const (
	EventNormalize = "normalize"
	EventValidate  = "validate"
	EventEnrich    = "enrich"
	EventRender    = "render"
	EventStore     = "store"
	EventFail      = "fail"
)

// QuoteGenerationFSM enforces the stage order of a quote generation run
type QuoteGenerationFSM struct {
	generation *models.QuoteGeneration
	fsm        *fsm.FSM
}

// NewQuoteGenerationFSM creates a state machine positioned at the run's current status
func NewQuoteGenerationFSM(generation *models.QuoteGeneration) *QuoteGenerationFSM {
	if generation.Status == "" {
		generation.Status = models.GenerationStatusReceived
	}

	g := &QuoteGenerationFSM{generation: generation}

	g.fsm = fsm.NewFSM(
		generation.Status,
		fsm.Events{
			{Name: EventNormalize, Src: []string{models.GenerationStatusReceived}, Dst: models.GenerationStatusNormalized},
			{Name: EventValidate, Src: []string{models.GenerationStatusNormalized}, Dst: models.GenerationStatusValidated},
			{Name: EventEnrich, Src: []string{models.GenerationStatusValidated}, Dst: models.GenerationStatusEnriched},
			{Name: EventRender, Src: []string{models.GenerationStatusEnriched}, Dst: models.GenerationStatusRendered},
			{Name: EventStore, Src: []string{models.GenerationStatusRendered}, Dst: models.GenerationStatusStored},

			// any open stage → failed
			{Name: EventFail, Src: []string{
				models.GenerationStatusReceived,
				models.GenerationStatusNormalized,
				models.GenerationStatusValidated,
				models.GenerationStatusEnriched,
				models.GenerationStatusRendered,
			}, Dst: models.GenerationStatusFailed},
		},
		fsm.Callbacks{
			"before_" + EventFail: func(_ context.Context, e *fsm.Event) {
				generation.FailedStage = e.Src
			},
		},
	)

	return g
}

// Advance fires a pipeline event and mirrors the new state onto the run
func (g *QuoteGenerationFSM) Advance(ctx context.Context, event string) error {
	if err := g.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("quote generation cannot %s from %s: %w", event, g.fsm.Current(), err)
	}
	g.generation.Status = g.fsm.Current()
	return nil
}

// Fail marks the run failed, remembering the stage it failed in
func (g *QuoteGenerationFSM) Fail(ctx context.Context) error {
	return g.Advance(ctx, EventFail)
}

// Current returns the current state
func (g *QuoteGenerationFSM) Current() string {
	return g.fsm.Current()
}

// Can checks if a transition is possible
func (g *QuoteGenerationFSM) Can(event string) bool {
	return g.fsm.Can(event)
}
