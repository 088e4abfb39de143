package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"accounts/internal/account/models"
	dErrors "accounts/pkg/domain-errors"
)

func (s *ServiceSuite) TestAddAccount() {
	req := &models.AddAccountRequest{Name: "John", Email: "john@x.com", Password: "p"}

	s.Run("hashes the password and stores the hash", func() {
		stored := s.newTestAccount()
		gomock.InOrder(
			s.mockHasher.EXPECT().Hash(gomock.Any(), "p").Return("hashed_password", nil),
			s.mockStore.EXPECT().Add(gomock.Any(), &models.NewAccount{
				Name:     "John",
				Email:    "john@x.com",
				Password: "hashed_password",
			}).Return(stored, nil),
		)

		account, err := s.service.AddAccount(s.ctx, req)

		s.Require().NoError(err)
		s.Same(stored, account)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.AccountsCreated))
	})

	s.Run("propagates hasher failures without touching the store", func() {
		boom := errors.New("bcrypt failed")
		s.mockHasher.EXPECT().Hash(gomock.Any(), "p").Return("", boom)
		s.mockStore.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)

		account, err := s.service.AddAccount(s.ctx, req)

		s.Nil(account)
		s.ErrorIs(err, boom)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("propagates store failures", func() {
		boom := errors.New("insert failed")
		s.mockHasher.EXPECT().Hash(gomock.Any(), "p").Return("hashed_password", nil)
		s.mockStore.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, boom)

		account, err := s.service.AddAccount(s.ctx, req)

		s.Nil(account)
		s.ErrorIs(err, boom)
		s.Equal("failed to save account", err.Error())
	})
}
