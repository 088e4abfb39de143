package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Hasher,HashComparer,AccountStore,TokenIssuer

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"accounts/internal/account/metrics"
	"accounts/internal/account/models"
	"accounts/internal/account/service/mocks"
	id "accounts/pkg/domain"
)

type ServiceSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	mockHasher   *mocks.MockHasher
	mockComparer *mocks.MockHashComparer
	mockStore    *mocks.MockAccountStore
	mockTokens   *mocks.MockTokenIssuer
	metrics      *metrics.Metrics
	service      *Service
}

func (s *ServiceSuite) SetupTest() {
	s.reset()
}

// SetupSubTest gives every s.Run case fresh mocks and counters.
func (s *ServiceSuite) SetupSubTest() {
	s.reset()
}

func (s *ServiceSuite) reset() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockHasher = mocks.NewMockHasher(s.ctrl)
	s.mockComparer = mocks.NewMockHashComparer(s.ctrl)
	s.mockStore = mocks.NewMockAccountStore(s.ctrl)
	s.mockTokens = mocks.NewMockTokenIssuer(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(
		s.mockHasher,
		s.mockComparer,
		s.mockStore,
		s.mockTokens,
		WithLogger(logger),
		WithMetrics(s.metrics),
	)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) newTestAccount() *models.Account {
	return &models.Account{
		ID:        id.NewAccountID(),
		Name:      "John",
		Email:     "john@x.com",
		Password:  "hashed_password",
		CreatedAt: time.Now(),
	}
}
