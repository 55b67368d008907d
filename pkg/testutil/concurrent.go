// Package testutil holds helpers shared by service and store tests.
package testutil

import (
	"sync"
	"sync/atomic"

	dErrors "welfare/pkg/domain-errors"
)

// ConcurrentResult counts outcomes of a RunConcurrent call. Conflicts
// include both conflict and constraint_violation errors.
type ConcurrentResult struct {
	Successes int32
	Errors    int32
	Conflicts int32
	NotFounds int32
}

func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.Conflicts + r.NotFounds
}

// RunConcurrent starts n goroutines, releases them together and waits for
// all of them. Holding them at a barrier makes racing writes to the same
// unique key likely enough to catch missing locks.
func RunConcurrent(n int, fn func(idx int) error) *ConcurrentResult {
	var (
		start sync.WaitGroup
		done  sync.WaitGroup
		ok    atomic.Int32
		other atomic.Int32
		clash atomic.Int32
		gone  atomic.Int32
	)
	start.Add(1)
	for i := range n {
		done.Go(func() {
			start.Wait()
			err := fn(i)
			switch code := dErrors.CodeOf(err); {
			case err == nil:
				ok.Add(1)
			case code == dErrors.CodeConflict, code == dErrors.CodeConstraintViolation:
				clash.Add(1)
			case code == dErrors.CodeNotFound:
				gone.Add(1)
			default:
				other.Add(1)
			}
		})
	}
	start.Done()
	done.Wait()

	return &ConcurrentResult{
		Successes: ok.Load(),
		Errors:    other.Load(),
		Conflicts: clash.Load(),
		NotFounds: gone.Load(),
	}
}
