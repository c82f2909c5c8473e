package analysis

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/seismograph/internal/cloth"
	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/geom"
)

func sine(freq, rate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}
	return out
}

func TestNextPow2(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {200, 256}, {256, 256},
	}
	for _, tt := range tests {
		if got := NextPow2(tt.in); got != tt.want {
			t.Errorf("NextPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPowerSpectrumLength(t *testing.T) {
	if PowerSpectrum(nil) != nil {
		t.Error("empty input should give nil")
	}
	ps := PowerSpectrum(make([]float64, 200))
	if len(ps) != 129 {
		t.Errorf("len = %d, want 129", len(ps))
	}
	for _, v := range ps {
		if v != 0 {
			t.Fatal("silence has power")
		}
	}
}

func TestDominantFrequency(t *testing.T) {
	tests := []struct {
		freq, rate float64
		n          int
	}{
		{5, 100, 256},
		{12, 60, 600},
		{1, 60, 1024},
	}
	for _, tt := range tests {
		got, power := DominantFrequency(sine(tt.freq, tt.rate, tt.n), tt.rate)
		res := tt.rate / float64(NextPow2(tt.n))
		if math.Abs(got-tt.freq) > res {
			t.Errorf("%g Hz: got %g (resolution %g)", tt.freq, got, res)
		}
		if power <= 0 {
			t.Errorf("%g Hz: power %g", tt.freq, power)
		}
	}
	if f, p := DominantFrequency([]float64{1}, 60); f != 0 || p != 0 {
		t.Error("single sample should give zero")
	}
}

func TestZeroCrossings(t *testing.T) {
	s := sine(2, 100, 200)
	zc := ZeroCrossings(s, 0.01)
	if len(zc) < 3 {
		t.Fatalf("crossings = %d", len(zc))
	}
	if f := CrossingFrequency(s, 0.01); math.Abs(f-2) > 0.05 {
		t.Errorf("crossing frequency = %g", f)
	}
	if CrossingFrequency([]float64{1, 2, 3}, 0.01) != 0 {
		t.Error("no crossings should give zero")
	}
}

func TestPhasePortrait(t *testing.T) {
	pts := PhasePortrait([]float64{0, 1, 3}, 0.5)
	if len(pts) != 2 {
		t.Fatalf("len = %d", len(pts))
	}
	if pts[0] != (Point{1, 2}) || pts[1] != (Point{3, 4}) {
		t.Errorf("points = %v", pts)
	}
	if PhasePortrait([]float64{1}, 0.1) != nil {
		t.Error("single sample should give nil")
	}
	art := PhasePortraitToASCII(PhasePortrait(sine(1, 50, 100), 0.02), 40, 12)
	if lines := strings.Split(strings.TrimRight(art, "\n"), "\n"); len(lines) != 12 {
		t.Errorf("rows = %d", len(lines))
	}
	if !strings.ContainsRune(art, '•') {
		t.Error("no points drawn")
	}
}

func TestSweepScalesWithAmplitude(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sim.Seed = 7
	pts, err := Sweep(context.Background(), cfg, "amplitude", 0.2, 1.0, 3, 60, 1.0/60)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(pts) != 3 {
		t.Fatalf("points = %d", len(pts))
	}
	wantParams := []float64{0.2, 0.6, 1.0}
	for i, p := range pts {
		if math.Abs(p.Param-wantParams[i]) > 1e-9 {
			t.Errorf("param[%d] = %g", i, p.Param)
		}
		if p.RMS <= 0 || p.Peak < p.RMS {
			t.Errorf("point %d: peak %g rms %g", i, p.Peak, p.RMS)
		}
	}
	if !(pts[0].Peak < pts[1].Peak && pts[1].Peak < pts[2].Peak) {
		t.Errorf("peak not increasing: %v", pts)
	}
	if art := SweepToASCII(pts, 30, 8); !strings.ContainsRune(art, 'o') {
		t.Error("sweep plot empty")
	}
}

func TestSweepUnknownParam(t *testing.T) {
	_, err := Sweep(context.Background(), config.DefaultConfig(), "nope", 0, 1, 2, 10, 0.1)
	if !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("err = %v", err)
	}
}

func TestBandDivergence(t *testing.T) {
	track := geom.Centered(2.8, 0.35, 1.5, 2.0)
	opts := cloth.DefaultOptions()
	opts.Length = 40
	opts.Width = 4

	got, err := BandDivergence(track, opts, 1.0/60, 30, 1e-3)
	if err != nil {
		t.Fatalf("steady: %v", err)
	}
	if got != 0 {
		t.Errorf("steady divergence = %g, want 0", got)
	}

	opts.Mode = cloth.Dynamic
	got, err = BandDivergence(track, opts, 1.0/60, 30, 1e-3)
	if err != nil {
		t.Fatalf("dynamic: %v", err)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("dynamic divergence = %g", got)
	}

	if _, err := BandDivergence(track, opts, 1.0/60, 30, 0); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("zero eps err = %v", err)
	}
}
