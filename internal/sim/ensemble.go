package sim

import (
	"context"
	"sync"

	"github.com/san-kum/seismograph/internal/config"
)

// Ensemble runs independent headless drivers that differ only in seed. Each
// run owns its driver, so runs proceed in parallel.
type Ensemble struct {
	cfg       *config.Config
	numRuns   int
	seedStart uint64
}

func NewEnsemble(cfg *config.Config, numRuns int, seedStart uint64) *Ensemble {
	if seedStart == 0 {
		seedStart = 1
	}
	return &Ensemble{cfg: cfg.Clone(), numRuns: numRuns, seedStart: seedStart}
}

// Run returns the drum signal recorded by each run, in seed order.
func (e *Ensemble) Run(ctx context.Context, frames int, dt float64) ([][]float64, error) {
	results := make([][]float64, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.cfg.Clone()
			cfg.Sim.Seed = e.seedStart + uint64(idx)
			cfg.Sim.Paused = false

			d, err := New(cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			rec := NewRecorder(0)
			d.AddObserver(rec)
			errs[idx] = d.Run(ctx, frames, dt, nil)
			results[idx] = rec.Samples()
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
