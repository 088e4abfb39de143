package validation

import (
	"context"

	dErrors "accounts/pkg/domain-errors"
)

// CompareFields fails with invalid_field(other) unless both fields hold
// strictly equal values. Used for password confirmation.
type CompareFields struct {
	field string
	other string
}

func NewCompareFields(field, other string) *CompareFields {
	return &CompareFields{field: field, other: other}
}

func (v *CompareFields) Validate(_ context.Context, body Body) (*dErrors.Error, error) {
	a, aok := body[v.field]
	b, bok := body[v.other]
	if aok != bok || !strictEqual(a, b) {
		return dErrors.InvalidField(v.other), nil
	}
	return nil, nil
}
