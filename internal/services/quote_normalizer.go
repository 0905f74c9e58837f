package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/terraenergy/prospect-quote-api/internal/models"
)

// SchemaVersionField is the payload key that selects the input adapter.
const SchemaVersionField = "schema_version"

// Normalize builds the canonical quote from a decoded JSON payload.
// It never fails: absent or malformed values fall back to zero values
// and label defaults. Completeness is checked separately.
func Normalize(raw any) models.ProspectQuote {
	p := payload{root: raw}
	return adapterFor(p.str(SchemaVersionField))(p)
}

// payload gives nil-safe path access into a decoded JSON object.
type payload struct {
	root any
}

func (p payload) value(path ...string) any {
	current := p.root
	for _, segment := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[segment]
	}
	return current
}

func (p payload) num(path ...string) float64 {
	return ToNumber(p.value(path...), 0)
}

// id reads an integer identifier. Fractions are truncated; out of range values become 0.
func (p payload) id(path ...string) int {
	n := math.Trunc(p.num(path...))
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0
	}
	return int(n)
}

// str reads a string leaf. Numeric leaves are rendered without exponent so
// identifiers sent as numbers survive; other kinds read as "".
func (p payload) str(path ...string) string {
	switch v := p.value(path...).(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		if isFinite(v) {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}

// label reads an opaque label, using def when it is absent or blank.
func (p payload) label(def string, path ...string) string {
	if s := p.str(path...); strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

func (p payload) section(path ...string) payload {
	return payload{root: p.value(path...)}
}
