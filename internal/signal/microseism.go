package signal

import (
	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
)

// Microseism is the low level background hum of the ground, modelled as
// one dimensional Perlin noise.
type Microseism struct {
	noise *perlin.Perlin
}

func NewMicroseism(seed int64) *Microseism {
	return &Microseism{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed)}
}

func (m *Microseism) Next(t, amplitude, frequency float64) float64 {
	return amplitude * m.noise.Noise1D(t*frequency)
}

// Blend adds Weight times Extra to Base.
type Blend struct {
	Base   Generator
	Extra  Generator
	Weight float64
}

func (b *Blend) Next(t, amplitude, frequency float64) float64 {
	v := b.Base.Next(t, amplitude, frequency)
	if b.Weight != 0 && b.Extra != nil {
		v += b.Weight * b.Extra.Next(t, amplitude, frequency)
	}
	return v
}
