package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"accounts/internal/account/metrics"
	"accounts/internal/account/models"
	"accounts/internal/platform/privacy"
	dErrors "accounts/pkg/domain-errors"
	"accounts/pkg/platform/sentinel"
)

// Authenticate returns an access token for matching credentials. An unknown
// email or a wrong password yields an empty token and a nil error; only
// collaborator failures are returned as errors.
func (s *Service) Authenticate(ctx context.Context, req *models.AuthenticationRequest) (_ string, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "account.Authenticate")
	defer func() {
		endSpan(span, err)
		s.metrics.ObserveAuthenticate(float64(time.Since(start).Milliseconds()))
		if err != nil {
			s.metrics.IncrementAuthAttempt(metrics.OutcomeError)
		}
	}()

	account, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.rejected(ctx, req.Email, metrics.OutcomeUnknownEmail)
			return "", nil
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to find account")
	}

	match, err := s.comparer.Compare(ctx, req.Password, account.Password)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to compare password")
	}
	if !match {
		s.rejected(ctx, req.Email, metrics.OutcomeBadPassword)
		return "", nil
	}

	token, err := s.tokens.Issue(ctx, account.ID)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue access token")
	}

	span.SetAttributes(attribute.String("account.id", account.ID.String()))
	s.metrics.IncrementAuthAttempt(metrics.OutcomeSuccess)
	s.logger.InfoContext(ctx, "account authenticated",
		"account_id", account.ID.String(),
	)
	return token, nil
}

func (s *Service) rejected(ctx context.Context, email, outcome string) {
	s.metrics.IncrementAuthAttempt(outcome)
	s.logger.InfoContext(ctx, "authentication rejected",
		"email", privacy.MaskEmail(email),
		"reason", outcome,
	)
}
