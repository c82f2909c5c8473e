package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/seismograph/internal/cloth"
	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/geom"
	"github.com/san-kum/seismograph/internal/signal"
	"github.com/san-kum/seismograph/internal/trace"
)

type Driver struct {
	cfg   *config.Config
	track *geom.Track
	band  *cloth.Band
	drum  *trace.Drum
	belt  *trace.Belt
	line  *trace.Line

	src signal.Source
	gen signal.Generator

	observers []dynamo.Observer

	frame     int
	time      float64
	drumAngle float64
	sample    float64
}

type Option func(*Driver)

// WithSource replaces the random source shared by all generators.
func WithSource(src signal.Source) Option {
	return func(d *Driver) { d.src = src }
}

func WithObserver(o dynamo.Observer) Option {
	return func(d *Driver) { d.observers = append(d.observers, o) }
}

var _ dynamo.Advancer = (*Driver)(nil)

func New(cfg *config.Config, opts ...Option) (*Driver, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Driver{cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}
	if d.src == nil {
		if cfg.Sim.Seed != 0 {
			d.src = signal.NewSource(cfg.Sim.Seed)
		} else {
			d.src = signal.NewRandomSource()
		}
	}

	gen, err := newGenerator(cfg, d.src)
	if err != nil {
		return nil, err
	}
	d.gen = gen

	d.track = cfg.Track()
	d.band, err = cloth.New(d.track, cfg.BandOptions())
	if err != nil {
		return nil, err
	}

	d.drum = trace.NewDrum(cfg.Drum.Grid, trace.InkColor(cfg.Drum.InkHue))
	d.belt = trace.NewBelt(signal.BeltSpikes(d.src))
	d.belt.ScrollRate = cfg.Belt.ScrollRate
	d.belt.StrokeWidth = cfg.Belt.StrokeWidth
	d.line = trace.NewLine(trace.LinePoints, signal.LineSpikes(d.src))
	d.line.Running = cfg.Sim.TraceRunning
	return d, nil
}

// newGenerator builds the drum signal, mixing in microseism noise when the
// config asks for it.
func newGenerator(cfg *config.Config, src signal.Source) (signal.Generator, error) {
	seed := int64(cfg.Sim.Seed)
	base, err := signal.Lookup(cfg.Signal.Source, src, seed)
	if err != nil {
		return nil, err
	}
	if cfg.Signal.Source == "microseism" || cfg.Signal.Microseism == 0 {
		return base, nil
	}
	return &signal.Blend{
		Base:   base,
		Extra:  signal.NewMicroseism(seed),
		Weight: cfg.Signal.Microseism,
	}, nil
}

func (d *Driver) AddObserver(o dynamo.Observer) { d.observers = append(d.observers, o) }

func (d *Driver) Advance(dt float64) { d.Step(dt) }

// Step runs one frame: band, drum, belt, trace line, drum rotation, then
// observers. A paused driver changes nothing and reports Paused.
func (d *Driver) Step(dt float64) dynamo.FrameStats {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	if d.cfg.Sim.Paused {
		s := d.stats(dt, 0, 0)
		s.Paused = true
		return s
	}

	d.time += dt
	d.frame++
	d.band.Advance(dt)

	amp := d.cfg.Signal.Amplitude
	d.sample = d.gen.Next(d.time, amp, d.cfg.Signal.Frequency)
	drumShift := d.drum.Advance(dt, d.sample, amp, d.cfg.Drum.RotationSpeed)
	beltShift := d.belt.Advance(dt, d.time)
	d.line.Advance(d.time)
	d.drumAngle = math.Mod(d.drumAngle+d.cfg.Drum.RotationSpeed*dt, 2*math.Pi)

	s := d.stats(dt, drumShift, beltShift)
	for _, o := range d.observers {
		o.OnFrame(s)
	}
	return s
}

func (d *Driver) stats(dt float64, drumShift, beltShift int) dynamo.FrameStats {
	s := dynamo.FrameStats{
		Frame:     d.frame,
		Time:      d.time,
		Dt:        dt,
		Phase:     d.band.Phase(),
		DrumAngle: d.drumAngle,
		DrumShift: drumShift,
		BeltShift: beltShift,
		Sample:    d.sample,
	}
	if d.band.Options().Mode == cloth.Dynamic {
		s.Strain = d.band.Strain()
	}
	return s
}

// Apply validates cfg and makes it current. Sizing edits rebuild the band;
// everything else is updated in place. On error nothing changes.
func (d *Driver) Apply(cfg *config.Config) error {
	next := cfg.Clone()
	if err := next.Validate(); err != nil {
		return err
	}
	prev := d.cfg

	gen := d.gen
	if prev.Signal.Source != next.Signal.Source || prev.Signal.Microseism != next.Signal.Microseism {
		g, err := newGenerator(next, d.src)
		if err != nil {
			return err
		}
		gen = g
	}

	if config.SizingChanged(prev, next) {
		track := next.Track()
		if err := d.band.Rebuild(track, next.BandOptions()); err != nil {
			return err
		}
		d.track = track
	} else if err := d.band.Tune(next.BandOptions()); err != nil {
		return err
	}

	d.cfg = next
	d.gen = gen
	if prev.Drum.Grid != next.Drum.Grid {
		d.drum.SetGrid(next.Drum.Grid)
	}
	if prev.Drum.InkHue != next.Drum.InkHue {
		d.drum.SetInk(trace.InkColor(next.Drum.InkHue))
	}
	d.belt.ScrollRate = next.Belt.ScrollRate
	d.belt.StrokeWidth = next.Belt.StrokeWidth
	d.line.Running = next.Sim.TraceRunning
	return nil
}

// Update edits a copy of the current config and applies it.
func (d *Driver) Update(edit func(c *config.Config)) error {
	next := d.cfg.Clone()
	edit(next)
	return d.Apply(next)
}

// Rebuild regenerates the track and band from the current config.
func (d *Driver) Rebuild() error {
	track := d.cfg.Track()
	if err := d.band.Rebuild(track, d.cfg.BandOptions()); err != nil {
		return err
	}
	d.track = track
	return nil
}

// Reset returns the band to rest and clears time, rotation and all traces.
func (d *Driver) Reset() {
	d.band.Reset()
	d.drum.Reset()
	d.belt.Reset()
	d.line.Reset()
	d.frame = 0
	d.time = 0
	d.drumAngle = 0
	d.sample = 0
}

// Run steps the driver headless for frames frames of fixed dt. callback may
// be nil; returning false stops early. A band that diverges ends the run
// with a FrameError.
func (d *Driver) Run(ctx context.Context, frames int, dt float64, callback func(dynamo.FrameStats) bool) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d: %w", frames, dynamo.ErrParameterBounds)
	}
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f: %w", dt, dynamo.ErrParameterBounds)
	}
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s := d.Step(dt)
		if math.IsNaN(s.Strain) || math.IsInf(s.Strain, 0) {
			return &dynamo.FrameError{Frame: s.Frame, Time: s.Time, Wrapped: dynamo.ErrUnstable}
		}
		if callback != nil && !callback(s) {
			return nil
		}
	}
	return nil
}

func (d *Driver) Config() *config.Config { return d.cfg.Clone() }
func (d *Driver) Track() *geom.Track     { return d.track }
func (d *Driver) Band() *cloth.Band      { return d.band }
func (d *Driver) Drum() *trace.Drum      { return d.drum }
func (d *Driver) Belt() *trace.Belt      { return d.belt }
func (d *Driver) Line() *trace.Line      { return d.line }
func (d *Driver) Time() float64          { return d.time }
func (d *Driver) Frame() int             { return d.frame }
func (d *Driver) DrumAngle() float64     { return d.drumAngle }
func (d *Driver) Sample() float64        { return d.sample }
