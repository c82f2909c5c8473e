package signal

import "math"

// Generator produces one drum sample for time t.
type Generator interface {
	Next(t, amplitude, frequency float64) float64
}

// Seismic is a main shock plus a decaying aftershock with a small
// continuous jitter.
type Seismic struct {
	Rand Source
}

func NewSeismic(src Source) *Seismic {
	return &Seismic{Rand: src}
}

func (s *Seismic) Next(t, amplitude, frequency float64) float64 {
	noise := 0.1 * (s.Rand.Uniform() - 0.5)
	return amplitude * (shock(t, frequency) + noise)
}

// Deterministic is Next without the noise term.
func (s *Seismic) Deterministic(t, amplitude, frequency float64) float64 {
	return amplitude * shock(t, frequency)
}

func shock(t, f float64) float64 {
	mainShock := math.Sin(t * f)
	after := 0.3 * math.Sin(t*f*2.5+1.0) * math.Exp(-t*0.1)
	return mainShock + after
}
