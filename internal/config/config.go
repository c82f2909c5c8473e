package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/seismograph/internal/cloth"
	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/geom"
	"github.com/san-kum/seismograph/internal/signal"
)

const (
	DefaultAmplitude     = 0.5
	DefaultFrequency     = 1.0
	DefaultRotationSpeed = 0.5 // rad/s
	DefaultInkHue        = -1  // black
	DefaultDrumDistance  = 2.8
	DefaultDrumRadius    = 0.35
	DefaultBandWidth     = 1.5
	DefaultBandLength    = 180
	DefaultWidthSegments = 16
	DefaultCenterY       = 2.0
	DefaultStiffness     = 0.8
	DefaultTension       = 0.1
	DefaultThickness     = 0.05
	DefaultLoopSpeed     = 0.01
	DefaultIterations    = 12
	DefaultGravity       = 9.8
)

type Config struct {
	Signal   SignalConfig   `yaml:"signal"`
	Drum     DrumConfig     `yaml:"drum"`
	Conveyor ConveyorConfig `yaml:"conveyor"`
	Paper    PaperConfig    `yaml:"paper"`
	Belt     BeltConfig     `yaml:"belt"`
	Sim      SimConfig      `yaml:"sim"`
	Assets   AssetsConfig   `yaml:"assets"`
}

type SignalConfig struct {
	Amplitude  float64 `yaml:"amplitude"`
	Frequency  float64 `yaml:"frequency"`
	Microseism float64 `yaml:"microseism"`
	Source     string  `yaml:"source"`
}

type DrumConfig struct {
	RotationSpeed float64 `yaml:"rotation_speed"`
	Grid          bool    `yaml:"grid"`
	InkHue        float64 `yaml:"ink_hue"`
}

type ConveyorConfig struct {
	DrumDistance  float64 `yaml:"drum_distance"`
	DrumRadius    float64 `yaml:"drum_radius"`
	BandWidth     float64 `yaml:"band_width"`
	BandLength    int     `yaml:"band_length"`
	WidthSegments int     `yaml:"width_segments"`
	CenterY       float64 `yaml:"center_y"`
}

type PaperConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Tension   float64 `yaml:"tension"`
	Thickness float64 `yaml:"thickness"`
}

type BeltConfig struct {
	ScrollRate  float64 `yaml:"scroll_rate"`
	StrokeWidth int     `yaml:"stroke_width"`
}

type SimConfig struct {
	Mode         string  `yaml:"mode"`
	LoopSpeed    float64 `yaml:"loop_speed"`
	Iterations   int     `yaml:"iterations"`
	Gravity      float64 `yaml:"gravity"`
	Paused       bool    `yaml:"paused"`
	TraceRunning bool    `yaml:"trace_running"`
	Seed         uint64  `yaml:"seed"` // 0 seeds from the clock
}

type AssetsConfig struct {
	Needle        string `yaml:"needle"`
	CollectionBox string `yaml:"collection_box"`
}

func DefaultConfig() *Config {
	return &Config{
		Signal: SignalConfig{
			Amplitude: DefaultAmplitude,
			Frequency: DefaultFrequency,
			Source:    "seismic",
		},
		Drum: DrumConfig{
			RotationSpeed: DefaultRotationSpeed,
			Grid:          true,
			InkHue:        DefaultInkHue,
		},
		Conveyor: ConveyorConfig{
			DrumDistance:  DefaultDrumDistance,
			DrumRadius:    DefaultDrumRadius,
			BandWidth:     DefaultBandWidth,
			BandLength:    DefaultBandLength,
			WidthSegments: DefaultWidthSegments,
			CenterY:       DefaultCenterY,
		},
		Paper: PaperConfig{
			Stiffness: DefaultStiffness,
			Tension:   DefaultTension,
			Thickness: DefaultThickness,
		},
		Belt: BeltConfig{
			ScrollRate:  200,
			StrokeWidth: 10,
		},
		Sim: SimConfig{
			Mode:       cloth.SteadyState.String(),
			LoopSpeed:  DefaultLoopSpeed,
			Iterations: DefaultIterations,
			Gravity:    DefaultGravity,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate clamps continuous parameters into their working ranges and
// rejects settings that cannot be clamped.
func (c *Config) Validate() error {
	if _, err := cloth.ParseMode(c.Sim.Mode); err != nil {
		return err
	}
	if !validSource(c.Signal.Source) {
		return fmt.Errorf("signal source %q: %w", c.Signal.Source, dynamo.ErrUnknownParam)
	}
	if c.Conveyor.WidthSegments < cloth.MinWidth {
		return fmt.Errorf("width_segments %d < %d: %w", c.Conveyor.WidthSegments, cloth.MinWidth, dynamo.ErrParameterBounds)
	}
	if c.Sim.Iterations < 0 {
		return fmt.Errorf("iterations %d: %w", c.Sim.Iterations, dynamo.ErrParameterBounds)
	}
	if c.Belt.StrokeWidth < 1 {
		return fmt.Errorf("stroke_width %d: %w", c.Belt.StrokeWidth, dynamo.ErrParameterBounds)
	}
	if name, ok := c.nonFinite(); ok {
		return fmt.Errorf("%s is not finite: %w", name, dynamo.ErrParameterBounds)
	}
	if c.Belt.ScrollRate < 0 || c.Drum.RotationSpeed < 0 {
		return fmt.Errorf("negative scroll speed: %w", dynamo.ErrParameterBounds)
	}

	c.Conveyor.DrumRadius = clamp(c.Conveyor.DrumRadius, 0.2, 1.0)
	c.Conveyor.BandWidth = clamp(c.Conveyor.BandWidth, 0.5, 2.5)
	c.Conveyor.BandLength = clampInt(c.Conveyor.BandLength, 60, 240)
	c.Conveyor.DrumDistance = clamp(c.Conveyor.DrumDistance, c.MinDrumDistance(), c.MaxDrumDistance())
	c.Signal.Amplitude = clamp(c.Signal.Amplitude, 0.1, 2.0)
	c.Signal.Frequency = clamp(c.Signal.Frequency, 0.1, 5.0)
	c.Signal.Microseism = clamp(c.Signal.Microseism, 0, 1)
	c.Paper.Stiffness = clamp(c.Paper.Stiffness, 0.1, 1)
	c.Paper.Tension = clamp(c.Paper.Tension, 0.01, 1)
	c.Paper.Thickness = clamp(c.Paper.Thickness, 0.01, 0.1)
	return nil
}

// nonFinite names the first float field holding NaN or an infinity.
func (c *Config) nonFinite() (string, bool) {
	fields := []struct {
		name string
		v    float64
	}{
		{"amplitude", c.Signal.Amplitude},
		{"frequency", c.Signal.Frequency},
		{"microseism", c.Signal.Microseism},
		{"rotation_speed", c.Drum.RotationSpeed},
		{"ink_hue", c.Drum.InkHue},
		{"drum_distance", c.Conveyor.DrumDistance},
		{"drum_radius", c.Conveyor.DrumRadius},
		{"band_width", c.Conveyor.BandWidth},
		{"center_y", c.Conveyor.CenterY},
		{"stiffness", c.Paper.Stiffness},
		{"tension", c.Paper.Tension},
		{"thickness", c.Paper.Thickness},
		{"scroll_rate", c.Belt.ScrollRate},
		{"loop_speed", c.Sim.LoopSpeed},
		{"gravity", c.Sim.Gravity},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return f.name, true
		}
	}
	return "", false
}

func (c *Config) MinDrumDistance() float64 {
	return geom.MinDrumDistance(c.Conveyor.DrumRadius, c.Conveyor.BandWidth)
}

func (c *Config) MaxDrumDistance() float64 {
	return geom.MaxDrumDistance(c.Conveyor.DrumRadius, c.Conveyor.BandWidth)
}

// Track places the rollers symmetrically about the origin.
func (c *Config) Track() *geom.Track {
	return geom.Centered(c.Conveyor.DrumDistance, c.Conveyor.DrumRadius, c.Conveyor.BandWidth, c.Conveyor.CenterY)
}

// BandOptions assumes c has been validated.
func (c *Config) BandOptions() cloth.Options {
	mode, _ := cloth.ParseMode(c.Sim.Mode)
	return cloth.Options{
		Length:     c.Conveyor.BandLength,
		Width:      c.Conveyor.WidthSegments,
		Mode:       mode,
		Pins:       cloth.DefaultPins(),
		LoopSpeed:  c.Sim.LoopSpeed,
		Stiffness:  c.Paper.Stiffness,
		Tension:    c.Paper.Tension,
		Gravity:    c.Sim.Gravity,
		Iterations: c.Sim.Iterations,
	}
}

// SizingChanged reports whether going from a to b needs a rebuild of the
// particle grid.
func SizingChanged(a, b *Config) bool {
	return a.Conveyor != b.Conveyor
}

func validSource(name string) bool {
	for _, n := range signal.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
