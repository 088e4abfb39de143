// Package testutil holds helpers shared by package tests.
package testutil

import (
	"errors"
	"sync"
	"sync/atomic"

	"accounts/pkg/platform/sentinel"
)

// ConcurrentResult tallies the outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes int32
	NotFounds int32
	Errors    int32
}

func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.NotFounds + r.Errors
}

// RunConcurrent runs fn from n goroutines at once and sorts each outcome into
// success, not found or other error.
func RunConcurrent(n int, fn func(idx int) error) *ConcurrentResult {
	var (
		wg                         sync.WaitGroup
		successes, notFounds, errs atomic.Int32
		start                      = make(chan struct{})
	)
	for i := range n {
		wg.Go(func() {
			<-start
			err := fn(i)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, sentinel.ErrNotFound):
				notFounds.Add(1)
			default:
				errs.Add(1)
			}
		})
	}
	close(start)
	wg.Wait()

	return &ConcurrentResult{
		Successes: successes.Load(),
		NotFounds: notFounds.Load(),
		Errors:    errs.Load(),
	}
}
