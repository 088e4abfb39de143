package validation

import (
	"context"

	dErrors "accounts/pkg/domain-errors"
)

// RequiredField fails when the field is falsy: absent, null, false, "", a
// numeric zero or NaN. Arrays and objects always count as present.
type RequiredField struct {
	field string
}

func NewRequiredField(field string) *RequiredField {
	return &RequiredField{field: field}
}

func (v *RequiredField) Validate(_ context.Context, body Body) (*dErrors.Error, error) {
	if isFalsy(body[v.field]) {
		return dErrors.MissingField(v.field), nil
	}
	return nil, nil
}
