package md4rip

import (
	"context"
	"crypto/rand"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// ErrBudgetExhausted is returned by Search when Config.MaxTrials trials ran
// without a verified collision.
var ErrBudgetExhausted = errors.New("md4rip: trial budget exhausted")

// Config controls a collision search. The zero value runs one worker with no
// limits, reading from crypto/rand.
type Config struct {
	// Workers is the number of independent finders. Values below 1 mean 1.
	Workers int

	// MaxTrials bounds the total number of trials over all workers. Zero
	// means unbounded.
	MaxTrials uint64

	// Timeout bounds the wall-clock time of the search. Zero means none.
	Timeout time.Duration

	// Rand returns the randomness source for one worker. It is called once
	// per worker and each returned reader is used by that worker only. Nil
	// means crypto/rand.Reader for every worker.
	Rand func() io.Reader
}

func (c Config) workers() int {
	if c.Workers < 1 {
		return 1
	}
	return c.Workers
}

func (c Config) source() io.Reader {
	if c.Rand == nil {
		return rand.Reader
	}
	return c.Rand()
}

// Result is a verified collision with the number of trials it took.
type Result struct {
	Collision
	Trials uint64
}

// Search looks for a collision from init. Limits and cancellation are only
// checked between trials, so a trial in progress always completes.
func Search(ctx context.Context, init State, cfg Config) (Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		s       = searcher{max: cfg.MaxTrials}
		workers = cfg.workers()
		results = make(chan result, workers)
		wg      sync.WaitGroup
	)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(f *Finder) {
			defer wg.Done()
			col, err := s.run(ctx, f)
			results <- result{col, err}
		}(NewFinder(init, cfg.source()))
	}

	// the first success or hard error stops the others. budget and context
	// errors are only reported once every worker agrees.
	var first error
	for i := 0; i < workers; i++ {
		r := <-results
		if r.err == nil {
			cancel()
			wg.Wait()
			return Result{Collision: r.col, Trials: s.trials.Load()}, nil
		}
		if first == nil || isStop(first) && !isStop(r.err) {
			first = r.err
		}
		if !isStop(r.err) {
			cancel()
		}
	}
	wg.Wait()

	return Result{Trials: s.trials.Load()}, first
}

type result struct {
	col Collision
	err error
}

// searcher holds the state shared by the workers of one search.
type searcher struct {
	max    uint64
	claims atomic.Uint64
	trials atomic.Uint64
}

// claim reserves one trial from the budget.
func (s *searcher) claim() bool {
	return s.max == 0 || s.claims.Add(1) <= s.max
}

func (s *searcher) run(ctx context.Context, f *Finder) (Collision, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Collision{}, errors.WithStack(err)
		}
		if !s.claim() {
			return Collision{}, ErrBudgetExhausted
		}

		col, ok, err := f.FindOnce()
		if err != nil {
			return Collision{}, err
		}
		s.trials.Add(1)
		if ok {
			return col, nil
		}
	}
}

func isStop(err error) bool {
	switch errors.Cause(err) {
	case ErrBudgetExhausted, context.Canceled, context.DeadlineExceeded:
		return true
	}
	return false
}
