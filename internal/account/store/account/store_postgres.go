package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"accounts/internal/account/models"
	id "accounts/pkg/domain"
	"accounts/pkg/platform/sentinel"
	"accounts/pkg/requestcontext"
)

// PostgresStore persists accounts in PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgres constructs a PostgreSQL-backed account store.
func NewPostgres(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type accountRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

func (r accountRow) toModel() *models.Account {
	return &models.Account{
		ID:        id.AccountID(r.ID),
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		CreatedAt: r.CreatedAt,
	}
}

func (s *PostgresStore) Add(ctx context.Context, account *models.NewAccount) (*models.Account, error) {
	if account == nil {
		return nil, fmt.Errorf("account is required")
	}
	query := `
		INSERT INTO accounts (id, name, email, password, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, password, created_at
	`
	var row accountRow
	err := s.db.QueryRowxContext(ctx, query,
		uuid.UUID(id.NewAccountID()),
		account.Name,
		account.Email,
		account.Password,
		requestcontext.Now(ctx).UTC(),
	).StructScan(&row)
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return row.toModel(), nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, name, email, password, created_at
		FROM accounts
		WHERE email = $1
		ORDER BY created_at ASC
		LIMIT 1
	`
	var row accountRow
	if err := s.db.GetContext(ctx, &row, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return row.toModel(), nil
}
