package account

import (
	"context"
	"fmt"
	"sync"

	"accounts/internal/account/models"
	id "accounts/pkg/domain"
	"accounts/pkg/platform/sentinel"
	"accounts/pkg/requestcontext"
)

// Error Contract:
// - FindByEmail returns ErrNotFound (wrapped) when no account has the email
// - Add never fails for a well-formed account; duplicates are stored as-is

// InMemoryStore keeps accounts in insertion order for tests and local runs.
type InMemoryStore struct {
	mu       sync.RWMutex
	accounts []models.Account
}

// NewInMemory constructs an empty in-memory account store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Add(ctx context.Context, account *models.NewAccount) (*models.Account, error) {
	if account == nil {
		return nil, fmt.Errorf("account is required")
	}
	record := models.Account{
		ID:        id.NewAccountID(),
		Name:      account.Name,
		Email:     account.Email,
		Password:  account.Password,
		CreatedAt: requestcontext.Now(ctx).UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, record)
	return &record, nil
}

// FindByEmail returns the earliest account registered with email.
func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			record := s.accounts[i]
			return &record, nil
		}
	}
	return nil, fmt.Errorf("account not found: %w", sentinel.ErrNotFound)
}

// Len reports how many accounts are stored.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
