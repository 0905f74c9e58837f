package database

import (
	"fmt"
	"time"

	"github.com/terraenergy/prospect-quote-api/internal/models"
	pkgLogger "github.com/terraenergy/prospect-quote-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool and query logging.
type Options struct {
	Environment  string
	MaxOpenConns int
}

// Connect establishes a connection to the PostgreSQL database
func Connect(dsn string, opts Options) (*gorm.DB, error) {
	logLevel := logger.Warn
	if opts.Environment == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 pkgLogger.NewGormLogger(logLevel, 200*time.Millisecond),
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates the tables owned by this service. cfe_tariffs belongs to the catalog.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.QuoteDocument{})
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
