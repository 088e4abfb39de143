package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "accounts/pkg/domain-errors"
	"accounts/pkg/validation"
)

// DecodeBody decodes a JSON object request body into an untyped body.
// Numbers are kept as json.Number. An empty body decodes to an empty map.
// On failure, writes an error response and returns nil, false.
func DecodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (validation.Body, bool) {
	body := validation.Body{}
	if r.Body == nil {
		return body, true
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := decodeSingle(dec, &body); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"error", err,
			"request_id", requestID,
		)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:       "request_too_large",
				Description: "request body too large",
			})
			return nil, false
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	if body == nil {
		body = validation.Body{}
	}
	return body, true
}

// decodeSingle decodes exactly one JSON value; anything but whitespace after it
// is an error. An empty input is not.
func decodeSingle(dec *json.Decoder, v any) error {
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("unexpected data after JSON value")
		}
		return err
	}
	return nil
}
