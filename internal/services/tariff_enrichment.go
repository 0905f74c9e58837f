package services

import (
	"context"

	"github.com/terraenergy/prospect-quote-api/internal/models"
	"github.com/terraenergy/prospect-quote-api/internal/repository"
)

// TariffDescriptor carries the catalog fields known for a tariff.
// Nil fields were not supplied and leave the quote untouched.
type TariffDescriptor struct {
	TariffType *string
	PriceKWh   *float64
}

// TariffLookup resolves a tariff id. A nil descriptor with a nil error means not found.
type TariffLookup interface {
	LookupTariff(ctx context.Context, id int) (*TariffDescriptor, error)
}

// TariffLookupFunc adapts a function to TariffLookup.
type TariffLookupFunc func(ctx context.Context, id int) (*TariffDescriptor, error)

func (f TariffLookupFunc) LookupTariff(ctx context.Context, id int) (*TariffDescriptor, error) {
	return f(ctx, id)
}

// StaticTariff answers every lookup with the same tariff code.
func StaticTariff(code string) TariffLookup {
	return TariffLookupFunc(func(ctx context.Context, id int) (*TariffDescriptor, error) {
		return &TariffDescriptor{TariffType: &code}, nil
	})
}

// TariffCatalog serves lookups from the cfe_tariffs table.
type TariffCatalog struct {
	repo repository.TariffRepository
}

func NewTariffCatalog(repo repository.TariffRepository) *TariffCatalog {
	return &TariffCatalog{repo: repo}
}

func (c *TariffCatalog) LookupTariff(ctx context.Context, id int) (*TariffDescriptor, error) {
	tariff, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tariff == nil {
		return nil, nil
	}
	code := tariff.TariffCode
	return &TariffDescriptor{TariffType: &code}, nil
}

// Enrich resolves cfe_info.tariff_type_id and merges the descriptor into cfe_info.
// Only the fields the descriptor supplies are overwritten. Lookup errors are returned as is.
func Enrich(ctx context.Context, q models.ProspectQuote, lookup TariffLookup) (models.ProspectQuote, error) {
	id := q.CfeInfo.TariffTypeID

	descriptor, err := lookup.LookupTariff(ctx, id)
	if err != nil {
		return models.ProspectQuote{}, err
	}
	if descriptor == nil {
		return models.ProspectQuote{}, &TariffNotFoundError{ID: id}
	}

	if descriptor.TariffType != nil {
		q.CfeInfo.TariffType = *descriptor.TariffType
	}
	if descriptor.PriceKWh != nil {
		q.CfeInfo.PriceKWh = *descriptor.PriceKWh
	}
	return q, nil
}
