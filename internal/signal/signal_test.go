package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/seismograph/internal/dynamo"
)

func TestSeismicDeterministic(t *testing.T) {
	s := NewSeismic(Constant(0.5))
	want := 0.5 * 0.3 * math.Sin(1.0)
	if got := s.Deterministic(0, 0.5, 1.0); math.Abs(got-want) > 1e-12 {
		t.Errorf("Deterministic(0) = %.6f, want %.6f", got, want)
	}
	if math.Abs(want-0.126) > 0.001 {
		t.Fatalf("reference value drifted: %.6f", want)
	}
	// u = 0.5 cancels the noise term
	if got := s.Next(0, 0.5, 1.0); math.Abs(got-want) > 1e-12 {
		t.Errorf("Next(0) = %.6f, want %.6f", got, want)
	}
}

func TestSeismicNoiseBounds(t *testing.T) {
	tests := []struct {
		u     float64
		delta float64
	}{
		{0, -0.05},
		{0.5, 0},
		{0.999, 0.0499},
	}
	for _, tt := range tests {
		s := NewSeismic(Constant(tt.u))
		for _, ts := range []float64{0, 1.3, 7.5} {
			got := s.Next(ts, 2, 1.5) - s.Deterministic(ts, 2, 1.5)
			if math.Abs(got-2*tt.delta) > 1e-3 {
				t.Errorf("u=%.3f t=%.1f: noise %.5f, want %.5f", tt.u, ts, got, 2*tt.delta)
			}
		}
	}
}

func TestSeededSourceRepeatable(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 100; i++ {
		ua, ub := a.Uniform(), b.Uniform()
		if ua != ub {
			t.Fatalf("draw %d differs: %v vs %v", i, ua, ub)
		}
		if ua < 0 || ua >= 1 {
			t.Fatalf("draw %d out of range: %v", i, ua)
		}
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	want := []float64{0.1, 0.2, 0.1}
	for i, w := range want {
		if got := s.Uniform(); got != w {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}
	if NewSequence().Uniform() != 0 {
		t.Error("empty sequence should yield 0")
	}
}

func TestSpikes(t *testing.T) {
	tests := []struct {
		name  string
		draws []float64
		want  float64
	}{
		{"quiet", []float64{0.5, 0.5}, 0},
		{"small spike", []float64{0.99, 0.75, 0.1}, 0.25 * 2 * 2},
		{"large positive", []float64{0.1, 0.999, 0.9}, 2 * 0.8},
		{"large negative", []float64{0.1, 0.999, 0.2}, -2 * 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BeltSpikes(NewSequence(tt.draws...))
			if got := s.Sample(0, 2); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Sample = %.5f, want %.5f", got, tt.want)
			}
		})
	}

	base := BeltSpikes(Constant(0))
	if got := base.Sample(math.Pi/2, 2); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("sine base = %.5f, want 0.6", got)
	}
}

func TestLineSpikes(t *testing.T) {
	s := LineSpikes(NewSequence(0.98, 1.0, 0.999, 0.7))
	want := 0.15 + 0.5*0.7 + 1.2
	if got := s.Sample(math.Pi/2, 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("Sample = %.5f, want %.5f", got, want)
	}
}

func TestMicroseism(t *testing.T) {
	a, b := NewMicroseism(7), NewMicroseism(7)
	for _, ts := range []float64{0.1, 0.5, 2.3, 10.7} {
		va, vb := a.Next(ts, 1, 1), b.Next(ts, 1, 1)
		if va != vb {
			t.Errorf("t=%.1f: same seed differs", ts)
		}
		if math.Abs(va) > 2 {
			t.Errorf("t=%.1f: noise %.3f out of range", ts, va)
		}
	}
}

func TestBlend(t *testing.T) {
	base := NewSeismic(Constant(0.5))
	b := &Blend{Base: base, Extra: base, Weight: 0.5}
	want := 1.5 * base.Next(1, 1, 1)
	if got := b.Next(1, 1, 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("Blend = %.5f, want %.5f", got, want)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		g, err := Lookup(name, Constant(0.5), 1)
		if err != nil || g == nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	if _, err := Lookup("tsunami", Constant(0.5), 1); !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}
