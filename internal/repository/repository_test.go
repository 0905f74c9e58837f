package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraenergy/prospect-quote-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

const tariffQuery = `SELECT id, tariff_code FROM cfe_tariffs WHERE id = (.+) LIMIT 1`

func TestTariffRepository_FindByID(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		want     *models.CfeTariff
		wantErr  bool
		errMatch string
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(tariffQuery).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "tariff_code"}).AddRow(1, "DAC"))
				mock.ExpectCommit()
			},
			want: &models.CfeTariff{ID: 1, TariffCode: "DAC"},
		},
		{
			name: "not found returns nil without error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(tariffQuery).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "tariff_code"}))
				mock.ExpectCommit()
			},
		},
		{
			name: "query failure rolls back",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(tariffQuery).
					WithArgs(1).
					WillReturnError(errors.New("connection reset by peer"))
				mock.ExpectRollback()
			},
			wantErr:  true,
			errMatch: "connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			got, err := NewTariffRepository(db).FindByID(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMatch)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuoteDocumentRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "prospect_quote_documents"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	doc := &models.QuoteDocument{
		GenerationID: "5b0c8a4e-0c62-4a55-9c55-1f0a3b3c9d10",
		ProspectID:   "0",
		TerralinkID:  "TL-9",
		Bucket:       "quotes",
		StorageKey:   "terralink/TL-9/quote/1700000000000.pdf",
	}
	err := NewQuoteDocumentRepository(db).Create(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, uint(7), doc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteDocumentRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "prospect_quote_documents" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "prospect_quote_documents" WHERE .+ ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "generation_id", "terralink_id", "bucket", "storage_key", "created_at"}).
			AddRow(3, "gen-3", "TL-9", "quotes", "terralink/TL-9/quote/1.pdf", now))

	query := NewListQuery()
	query.Search = "tl-9"
	docs, total, err := NewQuoteDocumentRepository(db).List(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, docs, 1)
	assert.Equal(t, "TL-9", docs[0].TerralinkID)
	assert.Equal(t, "terralink/TL-9/quote/1.pdf", docs[0].StorageKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuery_Offset(t *testing.T) {
	q := &ListQuery{Page: 3, PerPage: 20}
	assert.Equal(t, 40, q.offset())

	q.Page = 0
	assert.Equal(t, 0, q.offset())
}
