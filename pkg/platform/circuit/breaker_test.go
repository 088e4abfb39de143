package circuit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	b := New("error-log", WithFailureThreshold(2), WithSuccessThreshold(2))

	assert.Equal(t, NoChange, b.Record(errBoom))
	assert.False(t, b.IsOpen())
	assert.Equal(t, Opened, b.Record(errBoom))
	assert.True(t, b.IsOpen())
	assert.Equal(t, NoChange, b.Record(errBoom), "already open")
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := New("error-log", WithFailureThreshold(2))

	b.Record(errBoom)
	b.Record(nil)
	assert.Equal(t, NoChange, b.Record(errBoom))
	assert.False(t, b.IsOpen())
}

func TestBreakerClosesAfterConsecutiveSuccesses(t *testing.T) {
	b := New("error-log", WithFailureThreshold(1), WithSuccessThreshold(2))
	b.Record(errBoom)

	assert.Equal(t, NoChange, b.Record(nil))
	b.Record(errBoom)
	assert.Equal(t, NoChange, b.Record(nil), "failure reset the success streak")
	assert.Equal(t, Closed, b.Record(nil))
	assert.False(t, b.IsOpen())
}

func TestBreakerIgnoresInvalidThresholds(t *testing.T) {
	b := New("error-log", WithFailureThreshold(0), WithSuccessThreshold(-1))
	assert.Equal(t, 5, b.failureThreshold)
	assert.Equal(t, 3, b.successThreshold)
	assert.Equal(t, "error-log", b.Name())
}
