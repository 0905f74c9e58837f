package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraenergy/prospect-quote-api/internal/jobs"
	"github.com/terraenergy/prospect-quote-api/internal/models"
	"github.com/terraenergy/prospect-quote-api/internal/repository"
	"github.com/terraenergy/prospect-quote-api/internal/statemachine"
	"github.com/terraenergy/prospect-quote-api/internal/storage"
	"github.com/terraenergy/prospect-quote-api/pkg/logger"
)

// QuoteService runs the quote pipeline: normalize, validate, enrich, render and store.
type QuoteService struct {
	tariffs  TariffLookup
	renderer DocumentRenderer
	store    storage.DocumentStore
	docRepo  repository.QuoteDocumentRepository
	worker   *jobs.Worker
	now      func() time.Time
}

func NewQuoteService(
	tariffs TariffLookup,
	renderer DocumentRenderer,
	store storage.DocumentStore,
	docRepo repository.QuoteDocumentRepository,
	worker *jobs.Worker,
) *QuoteService {
	return &QuoteService{
		tariffs:  tariffs,
		renderer: renderer,
		store:    store,
		docRepo:  docRepo,
		worker:   worker,
		now:      time.Now,
	}
}

// GenerateResult is returned once the PDF is stored.
type GenerateResult struct {
	GenerationID string
	Quote        models.ProspectQuote
	Document     *models.StoredDocument
}

// Generate builds and stores the quote PDF for a decoded request body.
// Nothing is stored unless every stage succeeds.
func (s *QuoteService) Generate(ctx context.Context, raw any, requestedBy string) (*GenerateResult, error) {
	gen := &models.QuoteGeneration{ID: uuid.NewString(), StartedAt: s.now()}
	machine := statemachine.NewQuoteGenerationFSM(gen)
	log := logger.With("generation_id", gen.ID)

	fail := func(err error) (*GenerateResult, error) {
		if ferr := machine.Fail(ctx); ferr != nil {
			log.Error("Quote generation state error", "error", ferr)
		}
		log.Warn("Quote generation failed", "stage", gen.FailedStage, "error", err)
		return nil, err
	}

	quote := Normalize(raw)
	if err := machine.Advance(ctx, statemachine.EventNormalize); err != nil {
		return fail(err)
	}
	log = log.With("prospect_id", quote.ProspectID, "terralink_id", quote.TerralinkID)

	if err := ValidateCompleteness(quote); err != nil {
		return fail(err)
	}
	if err := machine.Advance(ctx, statemachine.EventValidate); err != nil {
		return fail(err)
	}

	quote, err := Enrich(ctx, quote, s.tariffs)
	if err != nil {
		return fail(err)
	}
	if err := machine.Advance(ctx, statemachine.EventEnrich); err != nil {
		return fail(err)
	}

	pdf, err := s.renderer.Render(quote)
	if err != nil {
		return fail(err)
	}
	if err := machine.Advance(ctx, statemachine.EventRender); err != nil {
		return fail(err)
	}

	key := DocumentKey(quote, gen.StartedAt)
	doc, err := s.store.Put(ctx, key, pdf, storage.ContentTypePDF)
	if err != nil {
		return fail(fmt.Errorf("error al guardar la cotización: %w", err))
	}
	if err := machine.Advance(ctx, statemachine.EventStore); err != nil {
		return fail(err)
	}

	log.Info("Quote PDF stored", "bucket", doc.Bucket, "key", doc.Key, "bytes", len(pdf),
		"elapsed", s.now().Sub(gen.StartedAt))

	s.recordDocument(gen.ID, quote, doc, int64(len(pdf)), requestedBy)

	return &GenerateResult{GenerationID: gen.ID, Quote: quote, Document: doc}, nil
}

// DocumentKey files the PDF under the prospect, or under the terralink id
// when the prospect id is the "0" placeholder. Ids are escaped into a single key segment.
func DocumentKey(q models.ProspectQuote, at time.Time) string {
	if !q.HasProspectRecord() {
		return fmt.Sprintf("terralink/%s/quote/%d.pdf", keySegment(q.TerralinkID), at.UnixMilli())
	}
	return fmt.Sprintf("prospect/%s/quote/%d.pdf", keySegment(q.ProspectID), at.UnixMilli())
}

// keySegment escapes "/" and neutralizes "." and ".." so an id can never climb into another prefix.
func keySegment(id string) string {
	escaped := url.PathEscape(strings.TrimSpace(id))
	if escaped == "." || escaped == ".." {
		return strings.ReplaceAll(escaped, ".", "%2E")
	}
	return escaped
}

// recordDocument writes the registry row in the background; the PDF is already stored.
func (s *QuoteService) recordDocument(generationID string, q models.ProspectQuote, doc *models.StoredDocument, size int64, requestedBy string) {
	if s.docRepo == nil || s.worker == nil {
		return
	}

	entry := &models.QuoteDocument{
		GenerationID: generationID,
		ProspectID:   q.ProspectID,
		TerralinkID:  q.TerralinkID,
		ClientName:   TitleCaseName(q.FullName()),
		TariffType:   q.CfeInfo.TariffType,
		Bucket:       doc.Bucket,
		StorageKey:   doc.Key,
		URL:          doc.URL,
		SizeBytes:    size,
		RequestedBy:  requestedBy,
	}

	s.worker.Enqueue("record_quote_document", func(ctx context.Context) error {
		return s.docRepo.Create(ctx, entry)
	})
}
