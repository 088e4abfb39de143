// Package controller turns a normalized request into one of four outcomes:
// bad request, unauthorized, server error or success.
//
// Controllers validate the body, call a use case and map the result through
// the httputil response constructors. They are the only place where a raised
// failure becomes a server error; nothing escapes Handle, not even a panic.
package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"accounts/internal/account/metrics"
	"accounts/internal/account/models"
	"accounts/pkg/platform/httputil"
	"accounts/pkg/validation"
)

// Request is the normalized inbound call built by the transport adapter.
type Request struct {
	Body validation.Body
}

// Controller handles one route.
type Controller interface {
	Handle(ctx context.Context, req *Request) *httputil.Response
}

// AccountAdder is the add-account use case.
type AccountAdder interface {
	AddAccount(ctx context.Context, req *models.AddAccountRequest) (*models.Account, error)
}

// Authenticator is the authenticate use case. An empty token means the
// credentials were rejected.
type Authenticator interface {
	Authenticate(ctx context.Context, req *models.AuthenticationRequest) (string, error)
}

type base struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	route   string
}

type Option func(*base)

func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		b.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(b *base) {
		b.metrics = m
	}
}

// WithRoute names the route in logs and metrics.
func WithRoute(route string) Option {
	return func(b *base) {
		b.route = route
	}
}

func newBase(route string, opts []Option) base {
	b := base{route: route}
	for _, opt := range opts {
		opt(&b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// recoverServerError must be deferred directly by Handle.
func recoverServerError(resp **httputil.Response) {
	if r := recover(); r != nil {
		*resp = httputil.ServerError(fmt.Errorf("panic: %v", r))
	}
}

func bodyOf(req *Request) validation.Body {
	if req == nil || req.Body == nil {
		return validation.Body{}
	}
	return req.Body
}

// field reads a validated field as text. Scalars other than strings keep
// their JSON spelling.
func field(body validation.Body, key string) string {
	switch v := body[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
