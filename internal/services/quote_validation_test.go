package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraenergy/prospect-quote-api/internal/models"
)

func completeQuote() models.ProspectQuote {
	return models.ProspectQuote{
		Name:        "Ana",
		LastName:    "López",
		ProspectID:  "P-100",
		TerralinkID: "TL-9",
		SystemProposed: models.SystemProposed{
			SystemPowerW:   5000,
			RequiredAreaM2: 30,
		},
		CfeInfo: models.CfeInfo{TariffTypeID: 1},
	}
}

func TestValidateCompleteness(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(q *models.ProspectQuote)
		wantReason string
		wantFields []string
	}{
		{
			name:   "complete quote passes",
			mutate: func(q *models.ProspectQuote) {},
		},
		{
			name:   "energy is not required",
			mutate: func(q *models.ProspectQuote) { q.SystemProposed.SystemEnergyKWh = 0 },
		},
		{
			name:   "zero prospect sentinel is present",
			mutate: func(q *models.ProspectQuote) { q.ProspectID = models.NoProspectID },
		},
		{
			name:       "blank name",
			mutate:     func(q *models.ProspectQuote) { q.Name = "  " },
			wantReason: ReasonProspectIncomplete,
			wantFields: []string{"name"},
		},
		{
			name: "missing identifiers",
			mutate: func(q *models.ProspectQuote) {
				q.ProspectID = ""
				q.TerralinkID = ""
			},
			wantReason: ReasonProspectIncomplete,
			wantFields: []string{"prospect_id", "terralink_id"},
		},
		{
			name:       "missing power",
			mutate:     func(q *models.ProspectQuote) { q.SystemProposed.SystemPowerW = 0 },
			wantReason: ReasonSystemMissing,
			wantFields: []string{"system_power_w"},
		},
		{
			name:       "missing sizing",
			mutate:     func(q *models.ProspectQuote) { q.SystemProposed = models.SystemProposed{} },
			wantReason: ReasonSystemMissing,
			wantFields: []string{"system_power_w", "required_area_m2"},
		},
		{
			name: "identity reported before system",
			mutate: func(q *models.ProspectQuote) {
				q.LastName = ""
				q.SystemProposed = models.SystemProposed{}
			},
			wantReason: ReasonProspectIncomplete,
			wantFields: []string{"last_name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := completeQuote()
			tt.mutate(&q)

			err := ValidateCompleteness(q)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIncompleteInput))

			var incomplete *IncompleteInputError
			require.True(t, errors.As(err, &incomplete))
			assert.Equal(t, tt.wantReason, incomplete.Reason)
			assert.Equal(t, tt.wantFields, incomplete.Fields)
		})
	}
}

func TestValidateCompleteness_NormalizedEmptyPayload(t *testing.T) {
	err := ValidateCompleteness(Normalize(map[string]any{}))

	assert.ErrorIs(t, err, ErrIncompleteInput)
	assert.Contains(t, err.Error(), ReasonProspectIncomplete)
}
