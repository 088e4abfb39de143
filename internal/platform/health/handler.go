// Package health serves the probes of the accounts service: liveness,
// readiness of its dependencies, and build/uptime status.
package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"accounts/pkg/platform/httputil"
)

// Version is overridden at link time.
var Version = "dev"

const DefaultCheckTimeout = 2 * time.Second

const (
	statusUp       = "up"
	statusDown     = "down"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// CheckFunc probes one dependency. The context carries the per-check deadline.
type CheckFunc func(ctx context.Context) error

type Option func(*Handler)

// WithCheckTimeout bounds each dependency probe. Non-positive values are ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.checkTimeout = d
		}
	}
}

type Handler struct {
	environment  string
	startedAt    time.Time
	checkTimeout time.Duration

	mu     sync.RWMutex
	checks map[string]CheckFunc
}

func New(environment string, opts ...Option) *Handler {
	h := &Handler{
		environment:  environment,
		startedAt:    time.Now(),
		checkTimeout: DefaultCheckTimeout,
		checks:       map[string]CheckFunc{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterCheck adds a dependency to the readiness probe, replacing any
// check already registered under name.
func (h *Handler) RegisterCheck(name string, check CheckFunc) {
	h.mu.Lock()
	h.checks[name] = check
	h.mu.Unlock()
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleStatus)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

type LivenessResponse struct {
	Status string `json:"status"`
}

func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LivenessResponse{Status: "alive"})
}

// CheckResult is the outcome of one dependency probe.
type CheckResult struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

type ReadinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// HandleReadiness probes every dependency concurrently and answers 503 when
// any of them is down.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	results := h.runChecks(r.Context())

	status, code := statusReady, http.StatusOK
	for _, res := range results {
		if res.Status != statusUp {
			status, code = statusNotReady, http.StatusServiceUnavailable
			break
		}
	}
	httputil.WriteJSON(w, code, ReadinessResponse{Status: status, Checks: results})
}

func (h *Handler) runChecks(ctx context.Context) map[string]CheckResult {
	h.mu.RLock()
	checks := make(map[string]CheckFunc, len(h.checks))
	for name, check := range h.checks {
		checks[name] = check
	}
	h.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]CheckResult, len(checks))
		g       errgroup.Group
	)
	for name, check := range checks {
		g.Go(func() error {
			res := h.probe(ctx, check)
			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // probes report failures in their results
	return results
}

func (h *Handler) probe(ctx context.Context, check CheckFunc) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, h.checkTimeout)
	defer cancel()

	start := time.Now()
	err := check(ctx)
	res := CheckResult{Status: statusUp, LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		res.Status = statusDown
		res.Error = err.Error()
	}
	return res
}

type StatusResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
}

func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	now := time.Now()
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{
		Status:        "healthy",
		Version:       Version,
		Environment:   h.environment,
		UptimeSeconds: int64(now.Sub(h.startedAt).Seconds()),
		Timestamp:     now.UTC().Format(time.RFC3339),
	})
}
