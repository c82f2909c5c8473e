package signal

import "math"

// Spikes is a slow sine with rare random spikes on top. A small spike fires
// when a draw exceeds SmallThreshold and a large one of random sign when a
// later draw exceeds LargeThreshold.
type Spikes struct {
	Rand           Source
	Base           float64 // sine amplitude
	SmallThreshold float64
	SmallScale     float64
	LargeThreshold float64
	LargeScale     float64
}

// BeltSpikes returns the belt pen model, scaled by the amplitude passed to
// Sample.
func BeltSpikes(src Source) *Spikes {
	return &Spikes{
		Rand:           src,
		Base:           0.3,
		SmallThreshold: 0.98,
		SmallScale:     2,
		LargeThreshold: 0.995,
		LargeScale:     0.8,
	}
}

// LineSpikes returns the model used by the 3D trace line; call Sample with
// amplitude 1.
func LineSpikes(src Source) *Spikes {
	return &Spikes{
		Rand:           src,
		Base:           0.15,
		SmallThreshold: 0.97,
		SmallScale:     0.7,
		LargeThreshold: 0.995,
		LargeScale:     1.2,
	}
}

// Sample returns the value at phase t. Draws happen in a fixed order: small
// trigger, small value, large trigger, large sign.
func (s *Spikes) Sample(t, amplitude float64) float64 {
	v := math.Sin(t) * amplitude * s.Base
	if s.Rand.Uniform() > s.SmallThreshold {
		v += (s.Rand.Uniform() - 0.5) * amplitude * s.SmallScale
	}
	if s.Rand.Uniform() > s.LargeThreshold {
		sign := -1.0
		if s.Rand.Uniform() > 0.5 {
			sign = 1
		}
		v += sign * amplitude * s.LargeScale
	}
	return v
}
