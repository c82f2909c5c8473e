package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/metrics"
	"github.com/san-kum/seismograph/internal/sim"
)

// SweepPoint summarises one headless run at a single parameter value.
type SweepPoint struct {
	Param     float64
	Peak      float64 // largest |sample|
	RMS       float64
	MaxStrain float64
}

// Sweep runs a fresh driver for each of steps values of param spread over
// [lo, hi] and records the drum signal statistics. Every run uses the same
// seed, so differences come from the parameter alone.
func Sweep(ctx context.Context, base *config.Config, param string, lo, hi float64, steps, frames int, dt float64) ([]SweepPoint, error) {
	if steps < 2 {
		steps = 2
	}
	seed := base.Sim.Seed
	if seed == 0 {
		seed = 1
	}
	step := (hi - lo) / float64(steps-1)

	out := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		value := lo + float64(i)*step
		cfg := base.Clone()
		cfg.Sim.Seed = seed
		cfg.Sim.Paused = false
		if err := cfg.SetParam(param, value); err != nil {
			return nil, err
		}
		d, err := sim.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%g: %w", param, value, err)
		}

		peak, rms, strain := metrics.NewPeak(), metrics.NewRMS(), metrics.NewMaxStrain()
		d.AddObserver(metrics.Set{peak, rms, strain})
		if err := d.Run(ctx, frames, dt, nil); err != nil {
			return nil, fmt.Errorf("sweep %s=%g: %w", param, value, err)
		}
		pt := SweepPoint{
			Param:     cfg.GetParams()[param],
			Peak:      peak.Value(),
			RMS:       rms.Value(),
			MaxStrain: strain.Value(),
		}
		out = append(out, pt)
	}
	return out, nil
}

// SweepToASCII draws peak (o) and RMS (.) against the swept parameter.
func SweepToASCII(data []SweepPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	maxVal := 0.0
	for _, p := range data {
		maxVal = math.Max(maxVal, p.Peak)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}
	put := func(col int, v float64, r rune) {
		row := height - 1 - int(v/maxVal*float64(height-1))
		if row >= 0 && row < height {
			canvas[row][col] = r
		}
	}
	for i, p := range data {
		col := i * width / len(data)
		put(col, p.RMS, '.')
		put(col, p.Peak, 'o')
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
