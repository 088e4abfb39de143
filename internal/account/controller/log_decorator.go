package controller

import (
	"context"
	"net/http"

	"accounts/pkg/platform/httputil"
	"accounts/pkg/requestcontext"
)

// ErrorLogStore persists the diagnostic trace of a server error.
type ErrorLogStore interface {
	RecordFailure(ctx context.Context, trace string) error
}

// LogDecorator wraps a controller and records every server error it returns.
// It never changes the wrapped response.
type LogDecorator struct {
	base
	inner     Controller
	errorLogs ErrorLogStore
}

func NewLogDecorator(inner Controller, errorLogs ErrorLogStore, opts ...Option) *LogDecorator {
	return &LogDecorator{
		base:      newBase("", opts),
		inner:     inner,
		errorLogs: errorLogs,
	}
}

func (d *LogDecorator) Handle(ctx context.Context, req *Request) *httputil.Response {
	resp := d.inner.Handle(ctx, req)
	if resp == nil || resp.StatusCode != http.StatusInternalServerError {
		return resp
	}

	trace := resp.ErrorTrace()
	requestID := requestcontext.RequestID(ctx)
	d.metrics.IncrementServerError(d.route)
	d.logger.ErrorContext(ctx, "controller server error",
		"route", d.route,
		"request_id", requestID,
		"trace", trace,
	)
	if err := d.errorLogs.RecordFailure(ctx, trace); err != nil {
		// The response still goes out unchanged.
		d.metrics.IncrementErrorLogFailure()
		d.logger.ErrorContext(ctx, "failed to record error log",
			"error", err,
			"route", d.route,
			"request_id", requestID,
		)
	}
	return resp
}

var _ Controller = (*LogDecorator)(nil)
