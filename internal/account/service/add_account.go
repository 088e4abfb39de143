package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"accounts/internal/account/models"
	"accounts/internal/platform/privacy"
	dErrors "accounts/pkg/domain-errors"
)

// AddAccount hashes the password and persists the account, returning the
// stored record with its assigned identity.
func (s *Service) AddAccount(ctx context.Context, req *models.AddAccountRequest) (_ *models.Account, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "account.AddAccount")
	defer func() {
		endSpan(span, err)
		s.metrics.ObserveAddAccount(float64(time.Since(start).Milliseconds()))
	}()

	hashed, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	account, err := s.accounts.Add(ctx, &models.NewAccount{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save account")
	}

	span.SetAttributes(attribute.String("account.id", account.ID.String()))
	s.metrics.IncrementAccountsCreated()
	s.logger.InfoContext(ctx, "account created",
		"account_id", account.ID.String(),
		"email", privacy.MaskEmail(account.Email),
	)
	return account, nil
}
