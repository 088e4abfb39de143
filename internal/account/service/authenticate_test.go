package service

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"accounts/internal/account/metrics"
	"accounts/internal/account/models"
	dErrors "accounts/pkg/domain-errors"
	"accounts/pkg/platform/sentinel"
)

func (s *ServiceSuite) TestAuthenticate() {
	req := &models.AuthenticationRequest{Email: "john@x.com", Password: "p"}

	s.Run("returns a token for matching credentials", func() {
		account := s.newTestAccount()
		gomock.InOrder(
			s.mockStore.EXPECT().FindByEmail(gomock.Any(), "john@x.com").Return(account, nil),
			s.mockComparer.EXPECT().Compare(gomock.Any(), "p", "hashed_password").Return(true, nil),
			s.mockTokens.EXPECT().Issue(gomock.Any(), account.ID).Return("access-token", nil),
		)

		token, err := s.service.Authenticate(s.ctx, req)

		s.Require().NoError(err)
		s.Equal("access-token", token)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.AuthAttempts.WithLabelValues(metrics.OutcomeSuccess)))
	})

	s.Run("unknown email yields no token and no error", func() {
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), "john@x.com").
			Return(nil, fmt.Errorf("account not found: %w", sentinel.ErrNotFound))
		s.mockComparer.EXPECT().Compare(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.mockTokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Times(0)

		token, err := s.service.Authenticate(s.ctx, req)

		s.NoError(err)
		s.Empty(token)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.AuthAttempts.WithLabelValues(metrics.OutcomeUnknownEmail)))
	})

	s.Run("password mismatch yields no token and no error", func() {
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), "john@x.com").Return(s.newTestAccount(), nil)
		s.mockComparer.EXPECT().Compare(gomock.Any(), "p", "hashed_password").Return(false, nil)
		s.mockTokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Times(0)

		token, err := s.service.Authenticate(s.ctx, req)

		s.NoError(err)
		s.Empty(token)
	})

	s.Run("lookup failures propagate", func() {
		boom := errors.New("connection refused")
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), "john@x.com").Return(nil, boom)

		token, err := s.service.Authenticate(s.ctx, req)

		s.Empty(token)
		s.ErrorIs(err, boom)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("comparer failures propagate", func() {
		boom := errors.New("corrupt hash")
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), "john@x.com").Return(s.newTestAccount(), nil)
		s.mockComparer.EXPECT().Compare(gomock.Any(), "p", "hashed_password").Return(false, boom)

		_, err := s.service.Authenticate(s.ctx, req)

		s.ErrorIs(err, boom)
	})

	s.Run("issuer failures propagate", func() {
		boom := errors.New("signing failed")
		account := s.newTestAccount()
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), "john@x.com").Return(account, nil)
		s.mockComparer.EXPECT().Compare(gomock.Any(), "p", "hashed_password").Return(true, nil)
		s.mockTokens.EXPECT().Issue(gomock.Any(), account.ID).Return("", boom)

		token, err := s.service.Authenticate(s.ctx, req)

		s.Empty(token)
		s.ErrorIs(err, boom)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.AuthAttempts.WithLabelValues(metrics.OutcomeError)))
	})
}
