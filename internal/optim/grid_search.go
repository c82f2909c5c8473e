package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/metrics"
	"github.com/san-kum/seismograph/internal/sim"
)

// Objective scores a candidate configuration. Lower is better.
type Objective func(ctx context.Context, cfg *config.Config) (float64, error)

var ErrNoCandidate = errors.New("optim: no candidate could be scored")

// GridSearch tries every combination of the given parameter values.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search returns the best parameter set and its score. Candidates whose
// objective fails are skipped; context cancellation stops the search.
func (g *GridSearch) Search(ctx context.Context, base *config.Config, objective Objective) (map[string]float64, float64, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, fmt.Errorf("optim: %d params but %d ranges", len(g.paramNames), len(g.ranges))
	}
	known := base.GetParams()
	for _, name := range g.paramNames {
		if _, ok := known[name]; !ok {
			return nil, 0, fmt.Errorf("optim: unknown param %q", name)
		}
	}

	best := math.Inf(1)
	var bestParams map[string]float64

	err := g.searchRecursive(ctx, 0, make(map[string]float64), base, objective, &best, &bestParams)
	if err != nil {
		return nil, 0, err
	}
	if bestParams == nil {
		return nil, 0, ErrNoCandidate
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	base *config.Config,
	objective Objective,
	best *float64,
	bestParams *map[string]float64,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.paramNames) {
		cfg := base.Clone()
		for k, v := range current {
			cfg.SetParam(k, v)
		}

		val, err := objective(ctx, cfg)
		if err != nil || math.IsNaN(val) {
			return nil
		}

		if val < *best {
			*best = val
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, base, objective, best, bestParams); err != nil {
			return err
		}
	}
	return nil
}

// MetricObjective runs a headless driver for frames frames and scores it by
// the final value of the metric built by newMetric.
func MetricObjective(newMetric func() metrics.Metric, frames int, dt float64) Objective {
	return func(ctx context.Context, cfg *config.Config) (float64, error) {
		cfg.Sim.Paused = false
		d, err := sim.New(cfg)
		if err != nil {
			return 0, err
		}
		m := newMetric()
		d.AddObserver(metrics.Set{m})
		if err := d.Run(ctx, frames, dt, nil); err != nil {
			return 0, err
		}
		return m.Value(), nil
	}
}

// Linspace returns n evenly spaced values over [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
