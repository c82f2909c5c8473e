package signal

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source supplies uniform draws in [0,1).
type Source interface {
	Uniform() float64
}

type RandSource struct {
	rng *rand.Rand
}

func NewSource(seed uint64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomSource seeds from the wall clock.
func NewRandomSource() *RandSource {
	return NewSource(uint64(time.Now().UnixNano()))
}

func (s *RandSource) Uniform() float64 { return s.rng.Float64() }

// Constant always returns the same draw.
type Constant float64

func (c Constant) Uniform() float64 { return float64(c) }

// Sequence replays fixed draws in order, cycling when exhausted.
type Sequence struct {
	vals []float64
	pos  int
}

func NewSequence(vals ...float64) *Sequence {
	return &Sequence{vals: vals}
}

func (s *Sequence) Uniform() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}
