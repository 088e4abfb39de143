package database

import (
	"context"
	"fmt"
)

// schema creates the tables the stores write to. Statements are idempotent so
// Bootstrap can run on every start.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS accounts_email_idx ON accounts (email, created_at)`,
	`CREATE TABLE IF NOT EXISTS log_errors (
		id         UUID PRIMARY KEY,
		trace      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Bootstrap ensures the account and error log tables exist.
func (p *Pool) Bootstrap(ctx context.Context) error {
	if p == nil || p.db == nil {
		return nil
	}
	for i, stmt := range schema {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap statement %d: %w", i+1, err)
		}
	}
	return nil
}
