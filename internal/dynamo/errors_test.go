package dynamo

import (
	"errors"
	"testing"
)

func TestFrameError(t *testing.T) {
	err := &FrameError{Frame: 150, Time: 1.5, Wrapped: ErrBufferMismatch}
	expected := "frame 150 (t=1.5000): dynamo: buffer size does not match grid"
	if err.Error() != expected {
		t.Errorf("FrameError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrBufferMismatch) {
		t.Error("FrameError should unwrap to its cause")
	}
}

func TestObserverFunc(t *testing.T) {
	var got FrameStats
	var obs Observer = ObserverFunc(func(s FrameStats) { got = s })
	obs.OnFrame(FrameStats{Frame: 3, Time: 0.05})
	if got.Frame != 3 || got.Time != 0.05 {
		t.Errorf("observer did not receive stats: %+v", got)
	}
}
