package sim

import (
	"github.com/charmbracelet/log"

	"github.com/san-kum/seismograph/internal/dynamo"
)

// DefaultLogEvery is five seconds of frames at 60 fps.
const DefaultLogEvery = 300

// LogObserver writes a diagnostic line every Every frames.
type LogObserver struct {
	logger *log.Logger
	Every  int
}

func NewLogObserver(logger *log.Logger, every int) *LogObserver {
	if every <= 0 {
		every = DefaultLogEvery
	}
	return &LogObserver{logger: logger, Every: every}
}

func (o *LogObserver) OnFrame(s dynamo.FrameStats) {
	if s.Frame%o.Every != 0 {
		return
	}
	o.logger.Info("frame",
		"n", s.Frame,
		"t", s.Time,
		"phase", s.Phase,
		"drum_angle", s.DrumAngle,
		"sample", s.Sample,
		"strain", s.Strain,
	)
}

// Recorder keeps the stats of every frame it sees, or the last Limit of
// them when Limit is positive.
type Recorder struct {
	Limit  int
	frames []dynamo.FrameStats
}

func NewRecorder(limit int) *Recorder {
	return &Recorder{Limit: limit}
}

func (r *Recorder) OnFrame(s dynamo.FrameStats) {
	r.frames = append(r.frames, s)
	if r.Limit > 0 && len(r.frames) > r.Limit {
		r.frames = r.frames[len(r.frames)-r.Limit:]
	}
}

func (r *Recorder) Frames() []dynamo.FrameStats { return r.frames }

// Samples returns the recorded drum signal.
func (r *Recorder) Samples() []float64 {
	out := make([]float64, len(r.frames))
	for i, f := range r.frames {
		out[i] = f.Sample
	}
	return out
}

func (r *Recorder) Last() (dynamo.FrameStats, bool) {
	if len(r.frames) == 0 {
		return dynamo.FrameStats{}, false
	}
	return r.frames[len(r.frames)-1], true
}

func (r *Recorder) Reset() { r.frames = r.frames[:0] }
