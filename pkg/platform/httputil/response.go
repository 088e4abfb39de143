package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	dErrors "accounts/pkg/domain-errors"
)

// Response is the transport-neutral outcome of a controller. It is built once
// by one of the constructors below and written once by the HTTP adapter.
type Response struct {
	StatusCode int
	Body       any
}

// BadRequest reports a field-level validation failure.
func BadRequest(err *dErrors.Error) *Response {
	return &Response{StatusCode: http.StatusBadRequest, Body: err}
}

// Unauthorized reports rejected credentials.
func Unauthorized() *Response {
	return &Response{StatusCode: http.StatusUnauthorized, Body: dErrors.Unauthorized()}
}

// ServerError converts a raised failure into a 500 whose body carries the
// diagnostic trace. A failure that already carries a server trace keeps it.
func ServerError(err error) *Response {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) && domainErr.Code == dErrors.CodeServerError && domainErr.Trace != "" {
		return &Response{StatusCode: http.StatusInternalServerError, Body: domainErr}
	}
	return &Response{StatusCode: http.StatusInternalServerError, Body: dErrors.ServerError(StackTrace(err))}
}

// Success wraps the operation payload.
func Success(payload any) *Response {
	return &Response{StatusCode: http.StatusOK, Body: payload}
}

// StackTrace renders the error chain of err followed by the stack of the
// calling goroutine.
func StackTrace(err error) string {
	return fmt.Sprintf("%s\n\n%s", errorChain(err), debug.Stack())
}

// errorChain joins the messages along err's Unwrap chain, skipping messages a
// wrapper already includes.
func errorChain(err error) string {
	if err == nil {
		return "<nil>"
	}
	msg := err.Error()
	for next := errors.Unwrap(err); next != nil; next = errors.Unwrap(next) {
		if inner := next.Error(); !strings.Contains(msg, inner) {
			msg += ": " + inner
		}
	}
	return msg
}

// ErrorTrace returns the diagnostic trace carried by a 500 response body.
func (r *Response) ErrorTrace() string {
	if domainErr, ok := r.Body.(*dErrors.Error); ok {
		if domainErr.Trace != "" {
			return domainErr.Trace
		}
		return domainErr.Error()
	}
	if err, ok := r.Body.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", r.Body)
}
