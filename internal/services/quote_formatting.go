package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	mexicanSpanish = language.MustParse("es-MX")
	namePrinter    = cases.Title(language.Spanish)
	numberPrinter  = message.NewPrinter(mexicanSpanish)
)

var periodLabels = map[string]string{
	"monthly":   "Mensual",
	"bimonthly": "Bimestral",
	"quarterly": "Trimestral",
	"annual":    "Anual",
	"yearly":    "Anual",
}

// TitleCaseName capitalizes each word of a person's name for display.
func TitleCaseName(name string) string {
	return namePrinter.String(strings.Join(strings.Fields(name), " "))
}

// PeriodLabel translates known period keys; unknown labels are shown as given.
func PeriodLabel(period string) string {
	if label, ok := periodLabels[strings.ToLower(strings.TrimSpace(period))]; ok {
		return label
	}
	return period
}

func FormatMXN(amount float64) string {
	return "$" + numberPrinter.Sprint(number.Decimal(amount, number.Scale(2))) + " MXN"
}

func FormatKWh(kwh float64) string {
	return numberPrinter.Sprint(number.Decimal(kwh, number.MaxFractionDigits(2))) + " kWh"
}

func FormatWatts(w float64) string {
	return numberPrinter.Sprint(number.Decimal(w, number.MaxFractionDigits(0))) + " W"
}

func FormatArea(m2 float64) string {
	return numberPrinter.Sprint(number.Decimal(m2, number.MaxFractionDigits(1))) + " m²"
}

func FormatPercent(pct float64) string {
	return numberPrinter.Sprint(number.Decimal(pct, number.MaxFractionDigits(1))) + "%"
}

// FormatPricePerKWh keeps three decimals since CFE prices are quoted in tenths of a cent.
func FormatPricePerKWh(price float64) string {
	return "$" + numberPrinter.Sprint(number.Decimal(price, number.Scale(3))) + " /kWh"
}
