package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToNumber converts loosely typed payload values to a finite float64.
// Numbers pass through, numeric strings are parsed in full, and anything
// else (nil, bools, garbage, NaN, ±Inf) yields fallback. It never panics.
func ToNumber(value any, fallback float64) float64 {
	var n float64

	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case json.Number:
		return parseNumber(v.String(), fallback)
	case string:
		return parseNumber(v, fallback)
	default:
		return fallback
	}

	if !isFinite(n) {
		return fallback
	}
	return n
}

func parseNumber(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(n) {
		return fallback
	}
	return n
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
