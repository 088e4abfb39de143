package errorlog

import (
	"context"
	"sync"

	"accounts/internal/account/models"
	id "accounts/pkg/domain"
	"accounts/pkg/requestcontext"
)

// InMemoryStore keeps recorded failures for tests and local runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []models.ErrorLog
}

// NewInMemory constructs an empty in-memory error log.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) RecordFailure(ctx context.Context, trace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, models.ErrorLog{
		ID:        id.NewErrorLogID(),
		Trace:     trace,
		CreatedAt: requestcontext.Now(ctx).UTC(),
	})
	return nil
}

// List returns the recorded failures oldest first.
func (s *InMemoryStore) List(_ context.Context) ([]models.ErrorLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ErrorLog, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
