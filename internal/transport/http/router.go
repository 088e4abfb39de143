package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"accounts/internal/account/controller"
	"accounts/internal/platform/health"
	"accounts/pkg/platform/middleware/metadata"
	"accounts/pkg/platform/middleware/request"
)

// Routes are the account controllers exposed under /api.
type Routes struct {
	SignUp controller.Controller
	Login  controller.Controller
}

// Config carries the transport-level knobs of the router.
type Config struct {
	Logger            *slog.Logger
	Health            *health.Handler
	Gatherer          prometheus.Gatherer
	Metrics           *request.Metrics
	Metadata          *metadata.Config
	Timeout           time.Duration
	MaxBodyBytes      int64
	CORSAllowedOrigin string
}

// NewRouter wires the public endpoints with middleware.
func NewRouter(routes Routes, cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(metadata.NewMiddleware(cfg.Metadata).Handler)
	r.Use(request.Logger(logger))
	r.Use(request.Latency(cfg.Metrics, routePattern))
	r.Use(request.CORS(cfg.CORSAllowedOrigin))
	if cfg.Timeout > 0 {
		r.Use(request.Timeout(cfg.Timeout))
	}

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(request.ContentTypeJSON)
		if cfg.MaxBodyBytes > 0 {
			api.Use(request.BodyLimit(cfg.MaxBodyBytes))
		}
		api.Post("/signup", Adapt(routes.SignUp, logger))
		api.Post("/login", Adapt(routes.Login, logger))
	})

	return r
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
