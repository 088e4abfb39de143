package validation

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	dErrors "accounts/pkg/domain-errors"
)

// MaxEmailLength is the maximum length of an email address accepted by the checker.
const MaxEmailLength = 255

// EmailChecker decides whether a string is a syntactically valid email.
// Implementations may fail; a failure is not the same as a rejection.
type EmailChecker interface {
	IsValid(email string) (bool, error)
}

// EmailField rejects a field the email checker does not accept. Checker
// failures are returned to the caller unchanged.
type EmailField struct {
	field   string
	checker EmailChecker
}

func NewEmailField(field string, checker EmailChecker) *EmailField {
	return &EmailField{field: field, checker: checker}
}

func (v *EmailField) Validate(_ context.Context, body Body) (*dErrors.Error, error) {
	// Non-string values reach the checker as "" and are rejected there.
	email, _ := body[v.field].(string)
	ok, err := v.checker.IsValid(email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return dErrors.InvalidField(v.field), nil
	}
	return nil, nil
}

// PlaygroundEmailChecker checks addresses with go-playground/validator.
type PlaygroundEmailChecker struct {
	validate *validator.Validate
}

// NewEmailChecker returns the production email checker.
func NewEmailChecker() *PlaygroundEmailChecker {
	return &PlaygroundEmailChecker{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (c *PlaygroundEmailChecker) IsValid(email string) (bool, error) {
	if len(email) > MaxEmailLength {
		return false, nil
	}
	err := c.validate.Var(email, "required,email")
	if err == nil {
		return true, nil
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return false, nil
	}
	return false, err
}

var (
	_ Validator    = (*EmailField)(nil)
	_ Validator    = (*RequiredField)(nil)
	_ Validator    = (*CompareFields)(nil)
	_ EmailChecker = (*PlaygroundEmailChecker)(nil)
)
