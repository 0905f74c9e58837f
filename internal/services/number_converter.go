package services

import (
	"fmt"
	"math"
	"strings"
)

// AmountInWords spells a peso amount the way Mexican invoices print it.
// Example: 1500.50 -> "MIL QUINIENTOS PESOS 50/100 M.N."
func AmountInWords(amount float64) string {
	if !isFinite(amount) {
		amount = 0
	}

	prefix := ""
	if amount < 0 {
		prefix = "MENOS "
		amount = -amount
	}

	// spellNumber stops below a billón; larger amounts would also overflow int64 cents
	if amount >= maxSpelledAmount {
		return prefix + "MÁS DE UN BILLÓN DE PESOS"
	}

	cents := int64(math.Round(amount * 100))
	integerPart := cents / 100
	decimalPart := cents % 100

	currency := "PESOS"
	if integerPart == 1 {
		currency = "PESO"
	}
	if integerPart >= 1_000_000 && integerPart%1_000_000 == 0 {
		currency = "DE " + currency
	}

	return fmt.Sprintf("%s%s %s %02d/100 M.N.", prefix, apocope(spellNumber(integerPart)), currency, decimalPart)
}

const maxSpelledAmount = 1e12

func spellNumber(n int64) string {
	switch {
	case n == 0:
		return "CERO"
	case n < 10:
		return units[n]
	case n < 30:
		return specials[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " Y " + units[n%10]
	case n == 100:
		return "CIEN"
	case n < 1000:
		return joinWords(hundreds[n/100], n%100)
	case n < 1_000_000:
		thousands := "MIL"
		if n/1000 > 1 {
			thousands = apocope(spellNumber(n/1000)) + " MIL"
		}
		return joinWords(thousands, n%1000)
	case n < maxSpelledAmount:
		millions := "UN MILLÓN"
		if n/1_000_000 > 1 {
			millions = apocope(spellNumber(n/1_000_000)) + " MILLONES"
		}
		return joinWords(millions, n%1_000_000)
	}
	return "MÁS DE UN BILLÓN"
}

func joinWords(head string, remainder int64) string {
	if remainder == 0 {
		return head
	}
	return head + " " + spellNumber(remainder)
}

// apocope shortens a trailing "uno" before a noun: VEINTIUNO MIL -> VEINTIÚN MIL.
func apocope(words string) string {
	switch {
	case strings.HasSuffix(words, "VEINTIUNO"):
		return strings.TrimSuffix(words, "VEINTIUNO") + "VEINTIÚN"
	case words == "UNO" || strings.HasSuffix(words, " UNO"):
		return strings.TrimSuffix(words, "O")
	}
	return words
}

var units = []string{
	"", "UNO", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE",
}

var specials = map[int64]string{
	10: "DIEZ", 11: "ONCE", 12: "DOCE", 13: "TRECE", 14: "CATORCE", 15: "QUINCE",
	16: "DIECISÉIS", 17: "DIECISIETE", 18: "DIECIOCHO", 19: "DIECINUEVE",
	20: "VEINTE", 21: "VEINTIUNO", 22: "VEINTIDÓS", 23: "VEINTITRÉS", 24: "VEINTICUATRO",
	25: "VEINTICINCO", 26: "VEINTISÉIS", 27: "VEINTISIETE", 28: "VEINTIOCHO", 29: "VEINTINUEVE",
}

var tens = []string{
	"", "", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA",
}

var hundreds = []string{
	"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS",
}
