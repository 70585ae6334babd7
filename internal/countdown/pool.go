package countdown

import (
	"context"
	"sync"
	"time"

	"github.com/espian/ticktock/internal/logging"
)

// DefaultWorkers is the pool size used when none is configured. The work is
// tiny; the pool exists to keep it off the sequencing goroutine, not for
// throughput.
const DefaultWorkers = 2

type job struct {
	ctx     context.Context
	target  time.Time
	deliver func(days int)
}

// Pool computes days-remaining values on background workers and delivers
// each result through a one-shot callback. A job whose context is cancelled
// before delivery is dropped silently: late results for pages the user has
// navigated away from are expected, not errors.
type Pool struct {
	jobs chan job
	wg   sync.WaitGroup

	// Now is the clock used for "today". Overridable in tests.
	Now func() time.Time

	closeOnce sync.Once
}

// NewPool starts a compute pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	p := &Pool{
		jobs: make(chan job, 16),
		Now:  time.Now,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		days := DaysRemaining(p.Now(), j.target)
		if j.ctx.Err() != nil {
			// Target went away before we finished. Drop the result.
			logging.Debug("days result dropped", logging.KeyOperation, "compute", logging.KeyDays, days)
			continue
		}
		j.deliver(days)
	}
}

// Submit schedules a days-remaining computation for target. The deliver
// callback runs at most once, on a worker goroutine, and is skipped when ctx
// is cancelled first. Submit never blocks the caller for long: the queue is
// buffered and jobs complete quickly.
func (p *Pool) Submit(ctx context.Context, target time.Time, deliver func(days int)) {
	if ctx == nil {
		ctx = context.Background()
	}
	p.jobs <- job{ctx: ctx, target: target, deliver: deliver}
}

// Close stops the workers after draining queued jobs.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}
