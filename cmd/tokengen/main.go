// Package main provides a CLI for minting and inspecting access tokens
// against a local accounts deployment. It reads JWT_SIGNING_KEY, JWT_ISSUER
// and TOKEN_TTL from the environment or a .env file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	jwttoken "accounts/internal/jwt_token"
	"accounts/internal/platform/config"
	id "accounts/pkg/domain"
)

type tokenOutput struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	ExpiresIn string `json:"expires_in"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	envFile := ".env"
	if len(args) == 0 {
		printUsage(out)
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "issue":
		fs := flag.NewFlagSet("issue", flag.ContinueOnError)
		fs.StringVar(&envFile, "env", envFile, "Env file to load before reading configuration")
		accountID := fs.String("account-id", "", "Account ID (UUID). Generated if empty.")
		ttl := fs.Duration("ttl", 0, "Token time-to-live (defaults to TOKEN_TTL)")
		asJSON := fs.Bool("json", false, "Output as JSON")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		svc, cfg, err := loadService(envFile, *ttl)
		if err != nil {
			return err
		}
		return issue(svc, cfg, *accountID, *asJSON, out)
	case "verify":
		fs := flag.NewFlagSet("verify", flag.ContinueOnError)
		fs.StringVar(&envFile, "env", envFile, "Env file to load before reading configuration")
		token := fs.String("token", "", "Token to verify")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		svc, _, err := loadService(envFile, 0)
		if err != nil {
			return err
		}
		claims, err := svc.ValidateToken(context.Background(), *token)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(claims)
	default:
		printUsage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func loadService(envFile string, ttl time.Duration) (*jwttoken.JWTService, config.Server, error) {
	if envFile != "" {
		// The file is optional; the process environment still applies.
		_ = godotenv.Load(envFile)
	}
	if os.Getenv("JWT_SIGNING_KEY") == "" {
		return nil, config.Server{}, fmt.Errorf("JWT_SIGNING_KEY must be set to mint tokens the server accepts")
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, config.Server{}, err
	}
	if ttl > 0 {
		cfg.TokenTTL = ttl
	}
	return jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.TokenTTL), cfg, nil
}

func issue(svc *jwttoken.JWTService, cfg config.Server, rawID string, asJSON bool, out io.Writer) error {
	accountID := id.NewAccountID()
	if rawID != "" {
		parsed, err := id.ParseAccountID(rawID)
		if err != nil {
			return err
		}
		accountID = parsed
	}

	token, err := svc.Issue(context.Background(), accountID)
	if err != nil {
		return err
	}
	if !asJSON {
		_, err = fmt.Fprintln(out, token)
		return err
	}
	return json.NewEncoder(out).Encode(tokenOutput{
		Token:     token,
		AccountID: accountID.String(),
		ExpiresIn: cfg.TokenTTL.String(),
	})
}

func printUsage(out io.Writer) {
	fmt.Fprint(out, `Usage: tokengen <command> [flags]

Commands:
  issue   Mint an access token for an account
  verify  Validate a token and print its claims
`)
}
