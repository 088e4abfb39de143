// Package validation holds the field validators that guard request bodies
// before any use case runs.
//
// A validator reports at most one field problem as a value (a
// *domainerrors.Error with code missing_field or invalid_field). A collaborator
// fault, such as a failing email checker, is returned separately in the error
// slot so callers can tell a bad request from a broken dependency.
package validation

import (
	"context"

	dErrors "accounts/pkg/domain-errors"
)

// Body is the untyped JSON body of an inbound call. No schema is enforced
// until a validator inspects it.
type Body map[string]any

// Validator inspects a body and reports at most one field-level error.
type Validator interface {
	Validate(ctx context.Context, body Body) (*dErrors.Error, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, body Body) (*dErrors.Error, error)

func (f ValidatorFunc) Validate(ctx context.Context, body Body) (*dErrors.Error, error) {
	return f(ctx, body)
}

// Composite runs an ordered list of validators and stops at the first failure.
type Composite struct {
	validators []Validator
}

// NewComposite builds a composite from validators in evaluation order.
func NewComposite(validators ...Validator) *Composite {
	return &Composite{validators: validators}
}

// Validate returns the result of the first validator, in construction order,
// that reports a field error or fails. Later validators are not run.
func (c *Composite) Validate(ctx context.Context, body Body) (*dErrors.Error, error) {
	for _, v := range c.validators {
		fieldErr, err := v.Validate(ctx, body)
		if err != nil {
			return nil, err
		}
		if fieldErr != nil {
			return fieldErr, nil
		}
	}
	return nil, nil
}

var _ Validator = (*Composite)(nil)
