package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/seismograph/internal/cloth"
	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/geom"
)

// BandDivergence estimates how fast the band solver amplifies a small
// disturbance, in the manner of a largest Lyapunov exponent:
//
//  1. build two identical bands and nudge one free particle of the second
//     sideways by eps
//  2. advance both and measure the RMS particle separation d(t)
//  3. λ ≈ mean(ln(d/eps)) / dt, renormalising once d exceeds 1
//
// Negative values mean the constraints damp disturbances. Steady-state
// bands re-snap every particle each frame, so they report 0.
func BandDivergence(track *geom.Track, opts cloth.Options, dt float64, frames int, eps float64) (float64, error) {
	if eps <= 0 || dt <= 0 || frames <= 0 {
		return 0, fmt.Errorf("eps %g, dt %g, frames %d: %w", eps, dt, frames, dynamo.ErrParameterBounds)
	}
	a, err := cloth.New(track, opts)
	if err != nil {
		return 0, err
	}
	b, err := cloth.New(track, opts)
	if err != nil {
		return 0, err
	}

	ps := b.Particles()
	k := -1
	for i := len(ps) / 2; i < len(ps); i++ {
		if !ps[i].Fixed {
			k = i
			break
		}
	}
	if k < 0 {
		return 0, nil
	}
	ps[k].Snap(r3.Add(ps[k].Position, r3.Vec{X: eps}))

	d0 := separation(a.Particles(), ps)
	sumLog := 0.0
	count := 0
	for f := 0; f < frames; f++ {
		a.Advance(dt)
		b.Advance(dt)

		pa, pb := a.Particles(), b.Particles()
		sep := separation(pa, pb)
		if math.IsNaN(sep) || math.IsInf(sep, 0) {
			return 0, &dynamo.FrameError{Frame: f + 1, Time: float64(f+1) * dt, Wrapped: dynamo.ErrUnstable}
		}
		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}
		if sep > 1 {
			scale := d0 / sep
			for i := range pb {
				if pb[i].Fixed {
					continue
				}
				off := r3.Scale(scale, r3.Sub(pb[i].Position, pa[i].Position))
				pb[i].Snap(r3.Add(pa[i].Position, off))
			}
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sumLog / (float64(count) * dt), nil
}

func separation(a, b []cloth.Particle) float64 {
	sum := 0.0
	for i := range a {
		sum += r3.Norm2(r3.Sub(a[i].Position, b[i].Position))
	}
	return math.Sqrt(sum / float64(len(a)))
}
