package validation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFalsy(t *testing.T) {
	var nilPtr *string
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"false", false, true},
		{"json zero", json.Number("0"), true},
		{"json negative zero", json.Number("-0.0"), true},
		{"int zero", 0, true},
		{"float zero", 0.0, true},
		{"nan", math.NaN(), true},
		{"nil pointer", nilPtr, true},
		{"string", "any_value", false},
		{"whitespace", " ", false},
		{"true", true, false},
		{"json number", json.Number("12"), false},
		{"negative int", -1, false},
		{"empty array", []any{}, false},
		{"empty object", map[string]any{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isFalsy(tt.value))
		})
	}
}

func TestStrictEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same strings", "p", "p", true},
		{"different strings", "p", "q", false},
		{"nil and nil", nil, nil, true},
		{"nil and empty string", nil, "", false},
		{"number and numeric string", json.Number("1"), "1", false},
		{"numbers by value", json.Number("1"), json.Number("1.0"), true},
		{"json number and int", json.Number("3"), 3, true},
		{"nan never equal", math.NaN(), math.NaN(), false},
		{"bools", true, true, true},
		{"bool and string", true, "true", false},
		{"arrays never equal", []any{"a"}, []any{"a"}, false},
		{"objects never equal", map[string]any{}, map[string]any{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strictEqual(tt.a, tt.b))
		})
	}
}
