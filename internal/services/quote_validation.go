package services

import (
	"strings"

	"github.com/terraenergy/prospect-quote-api/internal/models"
)

// ValidateCompleteness is the precondition for enrichment and rendering.
// Identity fields must be non-blank; system power and required area must be non-zero.
func ValidateCompleteness(q models.ProspectQuote) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", q.Name},
		{"last_name", q.LastName},
		{"prospect_id", q.ProspectID},
		{"terralink_id", q.TerralinkID},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &IncompleteInputError{Reason: ReasonProspectIncomplete, Fields: missing}
	}

	if q.SystemProposed.SystemPowerW == 0 {
		missing = append(missing, "system_power_w")
	}
	if q.SystemProposed.RequiredAreaM2 == 0 {
		missing = append(missing, "required_area_m2")
	}
	if len(missing) > 0 {
		return &IncompleteInputError{Reason: ReasonSystemMissing, Fields: missing}
	}

	return nil
}
