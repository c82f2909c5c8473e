package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// NextPow2 returns the smallest power of two >= n (1 for n <= 1).
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PowerSpectrum applies a Hann window to samples, zero pads to a power of
// two and returns |X_k|^2/N for bins 0..N/2.
func PowerSpectrum(samples []float64) []float64 {
	if len(samples) == 0 {
		return nil
	}
	n := NextPow2(len(samples))
	buf := make([]float64, n)
	copy(buf, samples)
	window.Apply(buf[:len(samples)], window.Hann)

	coeffs := fft.FFTReal(buf)
	ps := make([]float64, n/2+1)
	for k := range ps {
		m := cmplx.Abs(coeffs[k])
		ps[k] = m * m / float64(n)
	}
	return ps
}

// BinFrequency converts a spectrum bin to Hz for a signal of n samples
// (before padding) taken at sampleRate.
func BinFrequency(bin, n int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(NextPow2(n))
}

// DominantFrequency returns the frequency of the strongest non-DC bin and
// its power. Fewer than two samples give zero.
func DominantFrequency(samples []float64, sampleRate float64) (freq, power float64) {
	ps := PowerSpectrum(samples)
	if len(ps) < 2 {
		return 0, 0
	}
	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	return BinFrequency(best, len(samples), sampleRate), ps[best]
}
