package scheduler

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/IdleGarden_Go/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	clock      clockwork.Clock
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler. A nil clock uses the real clock.
func New(pool *worker.Pool, clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		workerPool: pool,
		clock:      clock,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. Ticks are dropped
// rather than queued while the pool is saturated, so a slow job never builds
// a backlog of stale runs.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	ticker := s.clock.NewTicker(interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ticker.Chan():
				s.workerPool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
