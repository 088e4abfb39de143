package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "accounts/pkg/domain-errors"
)

// ErrorResponse is the JSON envelope for every non-200 response.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
	Field       string `json:"field,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteResponse serializes a controller response: the payload on 200, an
// error envelope otherwise. Diagnostic traces never leave the process.
func WriteResponse(w http.ResponseWriter, resp *Response) {
	if resp.StatusCode == http.StatusOK {
		WriteJSON(w, resp.StatusCode, resp.Body)
		return
	}
	var domainErr *dErrors.Error
	if err, ok := resp.Body.(error); ok && errors.As(err, &domainErr) {
		WriteJSON(w, resp.StatusCode, toErrorResponse(domainErr))
		return
	}
	WriteJSON(w, resp.StatusCode, ErrorResponse{Error: DomainCodeToHTTPCode(dErrors.CodeServerError)})
}

// WriteError centralizes domain error translation for failures raised by the
// transport itself, before a controller runs.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), toErrorResponse(domainErr))
		return
	}
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: DomainCodeToHTTPCode(dErrors.CodeInternal),
	})
}

func toErrorResponse(err *dErrors.Error) ErrorResponse {
	return ErrorResponse{
		Error:       DomainCodeToHTTPCode(err.Code),
		Description: err.Error(),
		Field:       err.Field,
	}
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeMissingField, dErrors.CodeInvalidField, dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// DomainCodeToHTTPCode translates domain error codes to the error string of the JSON envelope.
func DomainCodeToHTTPCode(code dErrors.Code) string {
	switch code {
	case dErrors.CodeMissingField:
		return "missing_field"
	case dErrors.CodeInvalidField:
		return "invalid_field"
	case dErrors.CodeBadRequest:
		return "bad_request"
	case dErrors.CodeUnauthorized:
		return "unauthorized"
	default:
		return "internal_error"
	}
}
