package domainerrors

import (
	"errors"
	"fmt"
)

// Code represents a domain error category independent of transport layer.
// These codes describe what went wrong in business logic terms, not HTTP terms.
type Code string

const (
	CodeMissingField Code = "missing_field"
	CodeInvalidField Code = "invalid_field"
	CodeUnauthorized Code = "unauthorized"
	CodeServerError  Code = "server_error"
	CodeBadRequest   Code = "bad_request"
	CodeInternal     Code = "internal_error"
)

// Error wraps domain or infrastructure failures with a stable code.
// It is transport-agnostic and can be used across validation, service and store layers.
type Error struct {
	Code    Code
	Message string
	// Field names the offending request field for missing_field and invalid_field.
	Field string
	// Trace is the diagnostic stack of a server_error. It is never serialized to clients.
	Trace string
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Field: existing.Field, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// MissingField reports a required request field that is absent or empty.
func MissingField(field string) *Error {
	return &Error{Code: CodeMissingField, Field: field, Message: fmt.Sprintf("missing field: %s", field)}
}

// InvalidField reports a request field whose value was rejected.
func InvalidField(field string) *Error {
	return &Error{Code: CodeInvalidField, Field: field, Message: fmt.Sprintf("invalid field: %s", field)}
}

// Unauthorized reports rejected credentials.
func Unauthorized() *Error {
	return &Error{Code: CodeUnauthorized, Message: "unauthorized"}
}

// ServerError reports an unexpected failure; trace carries the diagnostic detail.
func ServerError(trace string) *Error {
	return &Error{Code: CodeServerError, Message: "internal server error", Trace: trace}
}
