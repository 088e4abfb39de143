package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"accounts/internal/account/metrics"
	"accounts/internal/account/models"
	id "accounts/pkg/domain"
)

// Hasher turns a plaintext password into a stored hash.
type Hasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
}

// HashComparer checks a plaintext password against a stored hash.
type HashComparer interface {
	Compare(ctx context.Context, plaintext, hashed string) (bool, error)
}

// AccountStore defines the persistence interface for accounts.
// Error Contract: FindByEmail returns sentinel.ErrNotFound when no account matches.
type AccountStore interface {
	Add(ctx context.Context, account *models.NewAccount) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}

// TokenIssuer mints an opaque access token for an account.
type TokenIssuer interface {
	Issue(ctx context.Context, accountID id.AccountID) (string, error)
}

// Service implements the add-account and authenticate use cases. It holds no
// per-request state; concurrency safety is the collaborators' concern.
type Service struct {
	hasher   Hasher
	comparer HashComparer
	accounts AccountStore
	tokens   TokenIssuer
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer allows injecting a custom OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(hasher Hasher, comparer HashComparer, accounts AccountStore, tokens TokenIssuer, opts ...Option) *Service {
	svc := &Service{
		hasher:   hasher,
		comparer: comparer,
		accounts: accounts,
		tokens:   tokens,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.tracer == nil {
		svc.tracer = otel.Tracer("accounts/service")
	}
	return svc
}
