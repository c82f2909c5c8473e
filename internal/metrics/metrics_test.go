package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/seismograph/internal/dynamo"
)

func frames(samples ...float64) []dynamo.FrameStats {
	out := make([]dynamo.FrameStats, len(samples))
	for i, v := range samples {
		out[i] = dynamo.FrameStats{Frame: i + 1, Sample: v, Strain: math.Abs(v) / 10}
	}
	return out
}

func TestAmplitudeMetrics(t *testing.T) {
	tests := []struct {
		name     string
		samples  []float64
		wantPeak float64
		wantRMS  float64
	}{
		{"empty", nil, 0, 0},
		{"constant", []float64{0.5, 0.5, 0.5}, 0.5, 0.5},
		{"symmetric", []float64{1, -1, 1, -1}, 1, 1},
		{"negative peak", []float64{0.2, -0.8}, 0.8, math.Sqrt((0.04 + 0.64) / 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, r := NewPeak(), NewRMS()
			for _, f := range frames(tt.samples...) {
				p.Observe(f)
				r.Observe(f)
			}
			if math.Abs(p.Value()-tt.wantPeak) > 1e-12 {
				t.Errorf("peak = %v, want %v", p.Value(), tt.wantPeak)
			}
			if math.Abs(r.Value()-tt.wantRMS) > 1e-12 {
				t.Errorf("rms = %v, want %v", r.Value(), tt.wantRMS)
			}
		})
	}
}

func TestStability(t *testing.T) {
	s := NewStability(0.05)
	if s.Value() != 1 {
		t.Errorf("empty stability = %v", s.Value())
	}
	for _, f := range frames(0.1, 0.9, 0.2, 0.7) {
		s.Observe(f)
	}
	if s.Value() != 0.5 {
		t.Errorf("stability = %v, want 0.5", s.Value())
	}
	s.Reset()
	if s.Value() != 1 {
		t.Error("reset should clear counts")
	}
}

func TestSetSkipsPausedFrames(t *testing.T) {
	set := Standard(1)
	set.OnFrame(dynamo.FrameStats{Sample: 0.9, Strain: 2, Paused: true})
	set.OnFrame(dynamo.FrameStats{Sample: 0.3, Strain: 0.4})

	v := set.Values()
	if len(v) != 4 {
		t.Fatalf("values = %v", v)
	}
	if v["peak"] != 0.3 || v["max_strain"] != 0.4 || v["stability"] != 1 {
		t.Errorf("values = %v", v)
	}

	set.Reset()
	if set.Values()["peak"] != 0 {
		t.Error("reset did not clear peak")
	}
}
