package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCaseName(t *testing.T) {
	assert.Equal(t, "Ana María", TitleCaseName("ana maría"))
	assert.Equal(t, "José Luis", TitleCaseName("  JOSÉ   luis "))
	assert.Equal(t, "", TitleCaseName(""))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Bimestral", PeriodLabel("bimonthly"))
	assert.Equal(t, "Mensual", PeriodLabel(" Monthly "))
	assert.Equal(t, "Anual", PeriodLabel("annual"))
	assert.Equal(t, "quincenal", PeriodLabel("quincenal"))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$75.50 MXN", FormatMXN(75.5))
	assert.Equal(t, "500 W", FormatWatts(500))
	assert.Equal(t, "600 kWh", FormatKWh(600))
	assert.Equal(t, "20%", FormatPercent(20))
	assert.Equal(t, "$2.200 /kWh", FormatPricePerKWh(2.2))
}
