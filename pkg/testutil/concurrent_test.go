package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"accounts/pkg/platform/sentinel"
)

func TestRunConcurrentSortsOutcomes(t *testing.T) {
	result := RunConcurrent(30, func(idx int) error {
		switch idx % 3 {
		case 0:
			return nil
		case 1:
			return fmt.Errorf("lookup: %w", sentinel.ErrNotFound)
		default:
			return errors.New("boom")
		}
	})

	assert.Equal(t, int32(10), result.Successes)
	assert.Equal(t, int32(10), result.NotFounds)
	assert.Equal(t, int32(10), result.Errors)
	assert.Equal(t, int32(30), result.Total())
}
