package controller_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"accounts/internal/account/controller"
	"accounts/internal/account/controller/mocks"
	"accounts/internal/account/metrics"
	dErrors "accounts/pkg/domain-errors"
	"accounts/pkg/platform/httputil"
	"accounts/pkg/validation"
)

type LogDecoratorSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	inner     *mocks.MockController
	errorLogs *mocks.MockErrorLogStore
	metrics   *metrics.Metrics
	decorator *controller.LogDecorator
	req       *controller.Request
}

func TestLogDecoratorSuite(t *testing.T) {
	suite.Run(t, new(LogDecoratorSuite))
}

func (s *LogDecoratorSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.inner = mocks.NewMockController(s.ctrl)
	s.errorLogs = mocks.NewMockErrorLogStore(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.decorator = controller.NewLogDecorator(s.inner, s.errorLogs,
		controller.WithLogger(discardLogger),
		controller.WithMetrics(s.metrics),
		controller.WithRoute("signup"),
	)
	s.req = &controller.Request{Body: validation.Body{"name": "John"}}
}

func (s *LogDecoratorSuite) TestCallsInnerController() {
	want := httputil.Success(map[string]string{"name": "John"})
	s.inner.EXPECT().Handle(s.ctx, s.req).Return(want)
	s.errorLogs.EXPECT().RecordFailure(gomock.Any(), gomock.Any()).Times(0)

	s.Same(want, s.decorator.Handle(s.ctx, s.req))
}

func (s *LogDecoratorSuite) TestPassesClientErrorsThroughUntouched() {
	for _, want := range []*httputil.Response{
		httputil.BadRequest(dErrors.MissingField("email")),
		httputil.Unauthorized(),
	} {
		s.inner.EXPECT().Handle(s.ctx, s.req).Return(want)
		s.Same(want, s.decorator.Handle(s.ctx, s.req))
	}
	s.errorLogs.EXPECT().RecordFailure(gomock.Any(), gomock.Any()).Times(0)
}

func (s *LogDecoratorSuite) TestRecordsServerErrorTraceOnce() {
	want := httputil.ServerError(dErrors.ServerError("any_stack"))
	s.inner.EXPECT().Handle(s.ctx, s.req).Return(want)
	s.errorLogs.EXPECT().RecordFailure(s.ctx, "any_stack").Return(nil).Times(1)

	got := s.decorator.Handle(s.ctx, s.req)

	s.Same(want, got)
	s.Equal(http.StatusInternalServerError, got.StatusCode)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ServerErrors.WithLabelValues("signup")))
}

func (s *LogDecoratorSuite) TestSinkFailureLeavesResponseUnchanged() {
	want := httputil.ServerError(dErrors.ServerError("any_stack"))
	s.inner.EXPECT().Handle(s.ctx, s.req).Return(want)
	s.errorLogs.EXPECT().RecordFailure(s.ctx, "any_stack").Return(errors.New("log store down"))

	s.Same(want, s.decorator.Handle(s.ctx, s.req))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ErrorLogFailures))
}
