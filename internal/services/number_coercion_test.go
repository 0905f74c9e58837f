package services

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		fallback float64
		want     float64
	}{
		{"float passes through", 1500.5, 0, 1500.5},
		{"negative float", -3.25, 0, -3.25},
		{"int", 42, 0, 42},
		{"int64", int64(7), 0, 7},
		{"uint8", uint8(3), 0, 3},
		{"float32", float32(0.5), 0, 0.5},
		{"json number", json.Number("600"), 0, 600},
		{"numeric string", "1500", 0, 1500},
		{"padded numeric string", "  12.75 ", 0, 12.75},
		{"exponent string", "1e3", 0, 1000},
		{"nil", nil, 0, 0},
		{"empty string", "", 0, 0},
		{"blank string", "   ", 9, 9},
		{"garbage", "abc", 0, 0},
		{"partial number", "12abc", 0, 0},
		{"thousands separator", "1,500", 0, 0},
		{"NaN float", math.NaN(), 0, 0},
		{"infinite float", math.Inf(1), 5, 5},
		{"NaN string", "NaN", 0, 0},
		{"infinity string", "Infinity", 0, 0},
		{"overflow string", "1e400", 0, 0},
		{"bool", true, 0, 0},
		{"map", map[string]any{"v": 1}, 0, 0},
		{"slice", []any{1}, 3, 3},
		{"invalid json number", json.Number("x"), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, ToNumber(tt.value, tt.fallback))
			})
		})
	}
}
