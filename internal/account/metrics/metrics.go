package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for account operations.
type Metrics struct {
	AccountsCreated      prometheus.Counter
	AuthAttempts         *prometheus.CounterVec
	ServerErrors         *prometheus.CounterVec
	ErrorLogFailures     prometheus.Counter
	AddAccountDurationMs prometheus.Histogram
	AuthDurationMs       prometheus.Histogram
}

// New registers account collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AuthAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_auth_attempts_total",
			Help: "Authentication attempts by outcome",
		}, []string{"outcome"}),
		ServerErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_server_errors_total",
			Help: "Controller responses that ended in a server error",
		}, []string{"route"}),
		ErrorLogFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "accounts_error_log_failures_total",
			Help: "Failures to persist an error log record",
		}),
		AddAccountDurationMs: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "accounts_add_account_duration_ms",
			Help:    "Duration of account creation in milliseconds",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		AuthDurationMs: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "accounts_authenticate_duration_ms",
			Help:    "Duration of authentication in milliseconds",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}
}

const (
	OutcomeSuccess      = "success"
	OutcomeUnknownEmail = "unknown_email"
	OutcomeBadPassword  = "bad_password"
	OutcomeError        = "error"
)

func (m *Metrics) IncrementAccountsCreated() {
	if m == nil {
		return
	}
	m.AccountsCreated.Inc()
}

func (m *Metrics) IncrementAuthAttempt(outcome string) {
	if m == nil {
		return
	}
	m.AuthAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementServerError(route string) {
	if m == nil {
		return
	}
	m.ServerErrors.WithLabelValues(route).Inc()
}

func (m *Metrics) IncrementErrorLogFailure() {
	if m == nil {
		return
	}
	m.ErrorLogFailures.Inc()
}

func (m *Metrics) ObserveAddAccount(ms float64) {
	if m == nil {
		return
	}
	m.AddAccountDurationMs.Observe(ms)
}

func (m *Metrics) ObserveAuthenticate(ms float64) {
	if m == nil {
		return
	}
	m.AuthDurationMs.Observe(ms)
}
