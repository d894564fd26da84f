package sim

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"blackjack-sim/strategy"
)

// sessionJob pairs a session's slot index with its pre-generated seed.
type sessionJob struct {
	ID   int
	Seed int64
}

// Runner executes a strategy's sessions across a worker pool and folds
// them into one Aggregate.
type Runner struct {
	cfg Config
}

func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg}, nil
}

// Run plays cfg.Sessions independent sessions of one strategy. Session
// seeds are all drawn from the parent seed before dispatch and every
// result lands in its session's slot, so the aggregate does not depend
// on worker count or scheduling.
func (r *Runner) Run(strat strategy.Strategy) (Aggregate, error) {
	seeds := make([]int64, r.cfg.Sessions)
	parent := rand.New(rand.NewSource(r.cfg.Seed))
	for i := range seeds {
		seeds[i] = parent.Int63()
	}

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]SessionResult, r.cfg.Sessions)
	jobs := make(chan sessionJob, r.cfg.Sessions)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				res, err := NewSession(r.cfg, strat, job.Seed).Run()
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("session %d: %w", job.ID, err)
					}
					mu.Unlock()
					continue
				}
				results[job.ID] = res
			}
		}()
	}

	for i, seed := range seeds {
		jobs <- sessionJob{ID: i, Seed: seed}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return Aggregate{}, firstErr
	}
	return aggregateSessions(strat.Name, r.cfg, results), nil
}
