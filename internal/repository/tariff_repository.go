package repository

import (
	"context"

	"github.com/terraenergy/prospect-quote-api/internal/models"
	"gorm.io/gorm"
)

type TariffRepository interface {
	FindByID(ctx context.Context, id int) (*models.CfeTariff, error)
}

type tariffRepository struct {
	db *gorm.DB
}

func NewTariffRepository(db *gorm.DB) TariffRepository {
	return &tariffRepository{db: db}
}

// FindByID runs the catalog point lookup in its own transaction.
// It returns nil, nil when no tariff has the given id.
func (r *tariffRepository) FindByID(ctx context.Context, id int) (*models.CfeTariff, error) {
	var tariffs []models.CfeTariff

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Raw("SELECT id, tariff_code FROM cfe_tariffs WHERE id = ? LIMIT 1", id).Scan(&tariffs).Error
	})
	if err != nil {
		return nil, err
	}
	if len(tariffs) == 0 {
		return nil, nil
	}
	return &tariffs[0], nil
}
