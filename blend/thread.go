package blend

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-blend/internal/affinity"
)

// workerStart prepares the goroutine of worker id before it touches its
// partition. A non-nil error means the worker could not be started.
type workerStart func(id int) (affinity.Release, error)

// Threaded is the fork-join executor. Each call plans Threads partitions,
// starts one goroutine per partition and waits for all of them; there is no
// persistent pool and no cancellation.
//
// Partitions are disjoint ranges of dst and the sources are only read, so
// workers share no mutable state and need no locking.
type Threaded struct {
	// Threads is the number of workers, >= 1. Thread counts above the sample
	// count are allowed; workers are only started for non-empty partitions.
	Threads int

	// Pin locks every worker to an OS thread pinned to one CPU of the
	// process affinity mask, assigned round-robin.
	Pin bool

	start workerStart
}

// Name implements Executor.
func (Threaded) Name() string { return StrategyThreaded.String() }

// Run writes the screen blend of src1 and src2 into dst.
//
// Workers are started one after another and each acknowledges its start
// before the next is launched. If a worker fails to start, no further
// workers are launched, the ones already running are joined, and an error
// wrapping ErrThreadCreation is returned; dst is then partially written.
func (e Threaded) Run(dst, src1, src2 []float64) error {
	if err := validate(dst, src1, src2); err != nil {
		return err
	}
	if e.Threads < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidThreadCount, e.Threads)
	}

	// With more workers than samples every partition but the last is empty,
	// and the last is [0, n).
	groups := e.Threads
	if groups > len(dst) {
		groups = 1
	}
	plan, err := Plan(len(dst), groups)
	if err != nil {
		return err
	}

	start, err := e.starter()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrThreadCreation, err)
	}

	var wg sync.WaitGroup
	started := make(chan error)

	for id, p := range plan {
		if p.Len() == 0 {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()

			if start != nil {
				release, err := start(id)
				started <- err
				if err != nil {
					return
				}
				if release != nil {
					defer release()
				}
			}

			ScreenBlock(dst[p.Start:p.End], src1[p.Start:p.End], src2[p.Start:p.End])
		}()

		if start == nil {
			continue
		}
		if err := <-started; err != nil {
			wg.Wait()
			return fmt.Errorf("%w: worker %d of %d: %w", ErrThreadCreation, id, len(plan), err)
		}
	}

	wg.Wait()
	return nil
}

// starter returns the per-worker start step, or nil when workers need no
// preparation.
func (e Threaded) starter() (workerStart, error) {
	if e.start != nil {
		return e.start, nil
	}
	if !e.Pin {
		return nil, nil
	}

	cpus, err := affinity.Allowed()
	if err != nil {
		return nil, err
	}
	return func(id int) (affinity.Release, error) {
		return affinity.Pin(cpus[id%len(cpus)])
	}, nil
}
