package errorlog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounts/pkg/platform/circuit"
)

type flakyRecorder struct {
	err   error
	calls int
}

func (f *flakyRecorder) RecordFailure(context.Context, string) error {
	f.calls++
	return f.err
}

func TestGuardedStore(t *testing.T) {
	ctx := context.Background()
	primary := &flakyRecorder{err: errors.New("db down")}
	fallback := NewInMemory()
	store := NewGuarded(primary, fallback,
		circuit.New("error-log", circuit.WithFailureThreshold(2), circuit.WithSuccessThreshold(1)),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	require.Error(t, store.RecordFailure(ctx, "first"), "closed circuit surfaces the failure")
	require.NoError(t, store.RecordFailure(ctx, "second"), "open circuit diverts to fallback")
	require.NoError(t, store.RecordFailure(ctx, "third"))

	kept, err := fallback.List(ctx)
	require.NoError(t, err)
	require.Len(t, kept, 2)
	assert.Equal(t, "second", kept[0].Trace)

	primary.err = nil
	require.NoError(t, store.RecordFailure(ctx, "fourth"))
	assert.Equal(t, 4, primary.calls, "primary is tried on every call")

	kept, err = fallback.List(ctx)
	require.NoError(t, err)
	assert.Len(t, kept, 2, "recovered primary takes the write")
}
