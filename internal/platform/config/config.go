package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"accounts/pkg/secrets"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr              string
	Environment       string
	LogLevel          string
	DatabaseURL       string
	JWTSigningKey     string
	JWTIssuer         string
	TokenTTL          time.Duration
	BcryptCost        int
	RequestTimeout    time.Duration
	MaxBodyBytes      int64
	CORSAllowedOrigin string
}

const (
	DefaultAddr           = ":8080"
	DefaultTokenTTL       = 15 * time.Minute
	DefaultBcryptCost     = 12
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodyBytes   = 1 << 20
	DefaultJWTIssuer      = "accounts"
)

// ErrMissingSigningKey is returned in production when no JWT key is set.
var ErrMissingSigningKey = errors.New("JWT_SIGNING_KEY is required in production")

// FromEnv builds a Server config from environment variables so main stays lean.
// Unparseable values fall back to their defaults.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:              envOr("ACCOUNTS_ADDR", DefaultAddr),
		Environment:       envOr("ENVIRONMENT", "dev"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSigningKey:     os.Getenv("JWT_SIGNING_KEY"),
		JWTIssuer:         envOr("JWT_ISSUER", DefaultJWTIssuer),
		TokenTTL:          durationOr("TOKEN_TTL", DefaultTokenTTL),
		BcryptCost:        intOr("BCRYPT_COST", DefaultBcryptCost),
		RequestTimeout:    durationOr("REQUEST_TIMEOUT", DefaultRequestTimeout),
		MaxBodyBytes:      int64(intOr("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		CORSAllowedOrigin: envOr("CORS_ALLOWED_ORIGIN", "*"),
	}

	if cfg.JWTSigningKey == "" {
		if cfg.IsProduction() {
			return Server{}, ErrMissingSigningKey
		}
		// Tokens signed with a generated key do not survive a restart.
		key, err := secrets.Generate()
		if err != nil {
			return Server{}, err
		}
		cfg.JWTSigningKey = key
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production guarantees.
func (s Server) IsProduction() bool {
	switch strings.ToLower(s.Environment) {
	case "prod", "production":
		return true
	}
	return false
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
