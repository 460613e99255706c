package testutil

import (
	"errors"
	"sync"
	"sync/atomic"

	"oirla/internal/sentinel"
)

// ConcurrentResult counts outcomes of RunConcurrent by sentinel.
type ConcurrentResult struct {
	Successes int32
	Conflicts int32
	NotFounds int32
	Errors    int32
}

// Total returns the number of calls made.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Conflicts + r.NotFounds + r.Errors
}

// RunConcurrent calls fn from n goroutines at once and sorts the returned
// errors: sentinel.ErrAlreadyUsed counts as a conflict, sentinel.ErrNotFound
// as not found, anything else as a plain error.
func RunConcurrent(n int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, conflicts, notFound, bad atomic.Int32
	start := make(chan struct{})

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start
			err := fn(idx)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, sentinel.ErrAlreadyUsed):
				conflicts.Add(1)
			case errors.Is(err, sentinel.ErrNotFound):
				notFound.Add(1)
			default:
				bad.Add(1)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	return &ConcurrentResult{
		Successes: successes.Load(),
		Conflicts: conflicts.Load(),
		NotFounds: notFound.Load(),
		Errors:    bad.Load(),
	}
}
