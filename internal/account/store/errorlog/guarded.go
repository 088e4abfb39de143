package errorlog

import (
	"context"
	"log/slog"

	"accounts/pkg/platform/circuit"
)

// Recorder is the write side shared by the error log stores.
type Recorder interface {
	RecordFailure(ctx context.Context, trace string) error
}

// GuardedStore writes to a primary error log and, once the primary has failed
// repeatedly, keeps traces in a fallback until the primary recovers. The
// primary is attempted on every call so that recovery can be observed.
type GuardedStore struct {
	primary  Recorder
	fallback Recorder
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewGuarded(primary, fallback Recorder, breaker *circuit.Breaker, logger *slog.Logger) *GuardedStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuardedStore{primary: primary, fallback: fallback, breaker: breaker, logger: logger}
}

func (s *GuardedStore) RecordFailure(ctx context.Context, trace string) error {
	err := s.primary.RecordFailure(ctx, trace)
	switch s.breaker.Record(err) {
	case circuit.Opened:
		s.logger.WarnContext(ctx, "error log circuit opened, using fallback", "breaker", s.breaker.Name(), "error", err)
	case circuit.Closed:
		s.logger.InfoContext(ctx, "error log circuit closed", "breaker", s.breaker.Name())
	}
	if err == nil {
		return nil
	}
	if !s.breaker.IsOpen() {
		return err
	}
	return s.fallback.RecordFailure(ctx, trace)
}
