package dynamo

// Advancer is anything stepped once per displayed frame.
type Advancer interface {
	Advance(dt float64)
}

// FrameStats is the per-frame summary handed to observers.
type FrameStats struct {
	Frame     int
	Time      float64
	Dt        float64
	Phase     float64
	DrumAngle float64
	DrumShift int
	BeltShift int
	Sample    float64
	Strain    float64
	Paused    bool
}

// Observer receives a FrameStats after every driver frame.
type Observer interface {
	OnFrame(s FrameStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(s FrameStats)

func (f ObserverFunc) OnFrame(s FrameStats) { f(s) }

// Configurable exposes named scalar parameters for runtime tuning.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
