package httptransport

import (
	"errors"
	"log/slog"
	"net/http"

	"accounts/internal/account/controller"
	"accounts/pkg/platform/httputil"
	"accounts/pkg/requestcontext"
)

// Adapt exposes a controller as an HTTP handler: it decodes the JSON body,
// hands the normalized request to the controller and writes the response.
func Adapt(c controller.Controller, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		body, ok := httputil.DecodeBody(w, r, logger, ctx, requestcontext.RequestID(ctx))
		if !ok {
			return
		}

		resp := c.Handle(ctx, &controller.Request{Body: body})
		if resp == nil {
			logger.ErrorContext(ctx, "controller returned no response",
				"path", r.URL.Path,
				"request_id", requestcontext.RequestID(ctx),
			)
			resp = httputil.ServerError(errors.New("controller returned no response"))
		}
		httputil.WriteResponse(w, resp)
	}
}
