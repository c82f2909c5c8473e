package metrics

import "github.com/san-kum/seismograph/internal/dynamo"

// Metric accumulates one scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(s dynamo.FrameStats)
	Value() float64
	Reset()
}

// Set fans frames out to several metrics and is itself an observer.
type Set []Metric

// Standard is the set recorded for every archived run.
func Standard(strainLimit float64) Set {
	return Set{NewPeak(), NewRMS(), NewMaxStrain(), NewStability(strainLimit)}
}

func (s Set) OnFrame(f dynamo.FrameStats) {
	if f.Paused {
		return
	}
	for _, m := range s {
		m.Observe(f)
	}
}

func (s Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s Set) Reset() {
	for _, m := range s {
		m.Reset()
	}
}
