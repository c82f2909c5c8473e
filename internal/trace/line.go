package trace

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/seismograph/internal/geom"
	"github.com/san-kum/seismograph/internal/signal"
)

const LinePoints = 200

// Line is the fixed length sample history drawn as a polyline across the gap
// between the rollers. Samples start at zero and only move while Running.
type Line struct {
	data   []float64
	pos    int // slot of the oldest sample
	spikes *signal.Spikes

	Running bool
}

func NewLine(n int, spikes *signal.Spikes) *Line {
	if n < 2 {
		n = 2
	}
	return &Line{data: make([]float64, n), spikes: spikes}
}

// Advance appends one sample for time now when running. It reports whether
// the buffer changed.
func (l *Line) Advance(now float64) bool {
	if !l.Running {
		return false
	}
	l.Push(l.spikes.Sample(now*4, 1))
	return true
}

// Push drops the oldest sample and appends v.
func (l *Line) Push(v float64) {
	l.data[l.pos] = v
	l.pos++
	if l.pos == len(l.data) {
		l.pos = 0
	}
}

// Samples returns the history oldest first.
func (l *Line) Samples() []float64 {
	out := make([]float64, len(l.data))
	copy(out, l.data[l.pos:])
	copy(out[len(l.data)-l.pos:], l.data[:l.pos])
	return out
}

func (l *Line) Latest() float64 {
	return l.data[(l.pos+len(l.data)-1)%len(l.data)]
}

func (l *Line) Len() int { return len(l.data) }

// Vertices lays the samples from the left roller to the right one on the top
// of the band, with each sample as the X deflection.
func (l *Line) Vertices(track *geom.Track) []r3.Vec {
	samples := l.Samples()
	n := len(samples)
	y := track.TopY()
	out := make([]r3.Vec, n)
	for i, v := range samples {
		f := float64(i) / float64(n-1)
		out[i] = r3.Vec{X: v, Y: y, Z: track.LeftZ + f*(track.RightZ-track.LeftZ)}
	}
	return out
}

func (l *Line) Reset() {
	for i := range l.data {
		l.data[i] = 0
	}
	l.pos = 0
}
