package metrics

import (
	"math"

	"github.com/san-kum/seismograph/internal/dynamo"
)

// Peak is the largest absolute drum sample seen.
type Peak struct {
	name string
	peak float64
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(s dynamo.FrameStats) {
	if a := math.Abs(s.Sample); a > p.peak {
		p.peak = a
	}
}

func (p *Peak) Value() float64 { return p.peak }
func (p *Peak) Reset()         { p.peak = 0 }

type RMS struct {
	name    string
	sumSq   float64
	samples int
}

func NewRMS() *RMS {
	return &RMS{name: "rms"}
}

func (r *RMS) Name() string { return r.name }

func (r *RMS) Observe(s dynamo.FrameStats) {
	r.sumSq += s.Sample * s.Sample
	r.samples++
}

func (r *RMS) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMS) Reset() {
	r.sumSq = 0
	r.samples = 0
}
