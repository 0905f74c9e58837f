package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraenergy/prospect-quote-api/internal/models"
)

type mockTariffRepo struct {
	mockFindByID func(ctx context.Context, id int) (*models.CfeTariff, error)
}

func (m *mockTariffRepo) FindByID(ctx context.Context, id int) (*models.CfeTariff, error) {
	return m.mockFindByID(ctx, id)
}

func TestEnrich_MergesTariffType(t *testing.T) {
	q := completeQuote()
	q.CfeInfo = models.CfeInfo{TariffTypeID: 1, TariffType: "old", PriceKWh: 3.1, ActualBimonthlyPayment: 2500}

	var gotID int
	lookup := TariffLookupFunc(func(ctx context.Context, id int) (*TariffDescriptor, error) {
		gotID = id
		code := "DAC"
		return &TariffDescriptor{TariffType: &code}, nil
	})

	enriched, err := Enrich(context.Background(), q, lookup)

	require.NoError(t, err)
	assert.Equal(t, 1, gotID)
	assert.Equal(t, models.CfeInfo{TariffTypeID: 1, TariffType: "DAC", PriceKWh: 3.1, ActualBimonthlyPayment: 2500}, enriched.CfeInfo)
	assert.Equal(t, q.SystemProposed, enriched.SystemProposed)
	assert.Equal(t, q.Savings, enriched.Savings)
	// input left untouched
	assert.Equal(t, "old", q.CfeInfo.TariffType)
}

func TestEnrich_MergesPriceWhenSupplied(t *testing.T) {
	q := completeQuote()
	price := 4.25

	enriched, err := Enrich(context.Background(), q, TariffLookupFunc(func(ctx context.Context, id int) (*TariffDescriptor, error) {
		return &TariffDescriptor{PriceKWh: &price}, nil
	}))

	require.NoError(t, err)
	assert.Equal(t, 4.25, enriched.CfeInfo.PriceKWh)
	assert.Equal(t, q.CfeInfo.TariffType, enriched.CfeInfo.TariffType)
}

func TestEnrich_TariffNotFound(t *testing.T) {
	q := completeQuote()
	q.CfeInfo.TariffTypeID = 42

	_, err := Enrich(context.Background(), q, TariffLookupFunc(func(ctx context.Context, id int) (*TariffDescriptor, error) {
		return nil, nil
	}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTariffNotFound)
	assert.Contains(t, err.Error(), "42")

	var notFound *TariffNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 42, notFound.ID)
}

func TestEnrich_LookupErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")

	_, err := Enrich(context.Background(), completeQuote(), TariffLookupFunc(func(ctx context.Context, id int) (*TariffDescriptor, error) {
		return nil, boom
	}))

	assert.Same(t, boom, err)
}

func TestStaticTariff(t *testing.T) {
	desc, err := StaticTariff("1C").LookupTariff(context.Background(), 99)

	require.NoError(t, err)
	require.NotNil(t, desc.TariffType)
	assert.Equal(t, "1C", *desc.TariffType)
	assert.Nil(t, desc.PriceKWh)
}

func TestTariffCatalog_LookupTariff(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		catalog := NewTariffCatalog(&mockTariffRepo{
			mockFindByID: func(ctx context.Context, id int) (*models.CfeTariff, error) {
				return &models.CfeTariff{ID: uint(id), TariffCode: "DAC"}, nil
			},
		})

		desc, err := catalog.LookupTariff(context.Background(), 3)

		require.NoError(t, err)
		require.NotNil(t, desc)
		assert.Equal(t, "DAC", *desc.TariffType)
	})

	t.Run("missing row", func(t *testing.T) {
		catalog := NewTariffCatalog(&mockTariffRepo{
			mockFindByID: func(ctx context.Context, id int) (*models.CfeTariff, error) {
				return nil, nil
			},
		})

		desc, err := catalog.LookupTariff(context.Background(), 3)

		assert.NoError(t, err)
		assert.Nil(t, desc)
	})

	t.Run("database error", func(t *testing.T) {
		catalog := NewTariffCatalog(&mockTariffRepo{
			mockFindByID: func(ctx context.Context, id int) (*models.CfeTariff, error) {
				return nil, errors.New("timeout")
			},
		})

		_, err := catalog.LookupTariff(context.Background(), 3)

		assert.EqualError(t, err, "timeout")
	})
}
