package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"accounts/internal/account/controller"
	"accounts/internal/account/metrics"
	"accounts/internal/account/service"
	accountstore "accounts/internal/account/store/account"
	"accounts/internal/account/store/errorlog"
	jwttoken "accounts/internal/jwt_token"
	"accounts/internal/platform/config"
	"accounts/internal/platform/database"
	"accounts/internal/platform/health"
	"accounts/internal/platform/logger"
	httptransport "accounts/internal/transport/http"
	"accounts/pkg/platform/circuit"
	"accounts/pkg/platform/middleware/request"
	"accounts/pkg/secrets"
	"accounts/pkg/validation"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	log.Info("initializing accounts",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"database", cfg.DatabaseURL != "",
	)

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close() //nolint:errcheck // process is exiting
	if err := pool.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap database: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	routes, healthHandler := buildAccounts(cfg, pool, reg, log)
	router := httptransport.NewRouter(routes, httptransport.Config{
		Logger:            log,
		Health:            healthHandler,
		Gatherer:          reg,
		Metrics:           request.NewMetrics(reg),
		Timeout:           cfg.RequestTimeout,
		MaxBodyBytes:      cfg.MaxBodyBytes,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildAccounts assembles stores, adapters, use cases and decorated
// controllers. Without a database pool everything runs in memory.
func buildAccounts(cfg config.Server, pool *database.Pool, reg prometheus.Registerer, log *slog.Logger) (httptransport.Routes, *health.Handler) {
	var (
		accounts  service.AccountStore
		errorLogs controller.ErrorLogStore
	)
	healthHandler := health.New(cfg.Environment)
	if pool != nil {
		accounts = accountstore.NewPostgres(pool.DB())
		errorLogs = errorlog.NewGuarded(
			errorlog.NewPostgres(pool.DB()),
			errorlog.NewInMemory(),
			circuit.New("error-log"),
			log,
		)
		healthHandler.RegisterCheck("database", pool.Health)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		accounts = accountstore.NewInMemory()
		errorLogs = errorlog.NewInMemory()
	}

	m := metrics.New(reg)
	hasher := secrets.NewBcrypt(cfg.BcryptCost)
	tokens := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL)
	svc := service.New(hasher, hasher, accounts, tokens,
		service.WithLogger(log),
		service.WithMetrics(m),
	)

	checker := validation.NewEmailChecker()
	decorate := func(route string, inner controller.Controller) controller.Controller {
		return controller.NewLogDecorator(inner, errorLogs,
			controller.WithLogger(log),
			controller.WithMetrics(m),
			controller.WithRoute(route),
		)
	}

	routes := httptransport.Routes{
		SignUp: decorate("signup", controller.NewSignUp(svc, controller.NewSignUpValidator(checker),
			controller.WithLogger(log), controller.WithMetrics(m))),
		Login: decorate("login", controller.NewLogin(svc, controller.NewLoginValidator(checker),
			controller.WithLogger(log), controller.WithMetrics(m))),
	}
	return routes, healthHandler
}
