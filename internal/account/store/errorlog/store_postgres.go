package errorlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"accounts/internal/account/models"
	id "accounts/pkg/domain"
	"accounts/pkg/requestcontext"
)

// PostgresStore appends server failures to the log_errors table.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgres constructs a PostgreSQL-backed error log.
func NewPostgres(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type errorLogRow struct {
	ID        uuid.UUID `db:"id"`
	Trace     string    `db:"trace"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *PostgresStore) RecordFailure(ctx context.Context, trace string) error {
	row := errorLogRow{
		ID:        uuid.UUID(id.NewErrorLogID()),
		Trace:     trace,
		CreatedAt: requestcontext.Now(ctx).UTC(),
	}
	query := `INSERT INTO log_errors (id, trace, created_at) VALUES (:id, :trace, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert error log: %w", err)
	}
	return nil
}

// List returns the recorded failures oldest first.
func (s *PostgresStore) List(ctx context.Context) ([]models.ErrorLog, error) {
	var rows []errorLogRow
	query := `SELECT id, trace, created_at FROM log_errors ORDER BY created_at ASC`
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list error logs: %w", err)
	}
	out := make([]models.ErrorLog, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ErrorLog{ID: id.ErrorLogID(r.ID), Trace: r.Trace, CreatedAt: r.CreatedAt})
	}
	return out, nil
}
