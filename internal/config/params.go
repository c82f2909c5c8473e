package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/seismograph/internal/dynamo"
)

// param binds a tunable name to a config field.
type param struct {
	get func(c *Config) float64
	set func(c *Config, v float64)
	// step is the increment used by keyboard controls
	step float64
}

var params = map[string]param{
	"amplitude": {
		get:  func(c *Config) float64 { return c.Signal.Amplitude },
		set:  func(c *Config, v float64) { c.Signal.Amplitude = v },
		step: 0.1,
	},
	"frequency": {
		get:  func(c *Config) float64 { return c.Signal.Frequency },
		set:  func(c *Config, v float64) { c.Signal.Frequency = v },
		step: 0.1,
	},
	"microseism": {
		get:  func(c *Config) float64 { return c.Signal.Microseism },
		set:  func(c *Config, v float64) { c.Signal.Microseism = v },
		step: 0.05,
	},
	"rotation_speed": {
		get:  func(c *Config) float64 { return c.Drum.RotationSpeed },
		set:  func(c *Config, v float64) { c.Drum.RotationSpeed = v },
		step: 0.1,
	},
	"drum_distance": {
		get:  func(c *Config) float64 { return c.Conveyor.DrumDistance },
		set:  func(c *Config, v float64) { c.Conveyor.DrumDistance = v },
		step: 0.05,
	},
	"drum_radius": {
		get:  func(c *Config) float64 { return c.Conveyor.DrumRadius },
		set:  func(c *Config, v float64) { c.Conveyor.DrumRadius = v },
		step: 0.05,
	},
	"band_width": {
		get:  func(c *Config) float64 { return c.Conveyor.BandWidth },
		set:  func(c *Config, v float64) { c.Conveyor.BandWidth = v },
		step: 0.1,
	},
	"band_length": {
		get:  func(c *Config) float64 { return float64(c.Conveyor.BandLength) },
		set:  func(c *Config, v float64) { c.Conveyor.BandLength = int(v) },
		step: 10,
	},
	"stiffness": {
		get:  func(c *Config) float64 { return c.Paper.Stiffness },
		set:  func(c *Config, v float64) { c.Paper.Stiffness = v },
		step: 0.05,
	},
	"tension": {
		get:  func(c *Config) float64 { return c.Paper.Tension },
		set:  func(c *Config, v float64) { c.Paper.Tension = v },
		step: 0.05,
	},
	"thickness": {
		get:  func(c *Config) float64 { return c.Paper.Thickness },
		set:  func(c *Config, v float64) { c.Paper.Thickness = v },
		step: 0.01,
	},
	"loop_speed": {
		get:  func(c *Config) float64 { return c.Sim.LoopSpeed },
		set:  func(c *Config, v float64) { c.Sim.LoopSpeed = v },
		step: 0.005,
	},
}

var _ dynamo.Configurable = (*Config)(nil)

func (c *Config) GetParams() map[string]float64 {
	out := make(map[string]float64, len(params))
	for name, p := range params {
		out[name] = p.get(c)
	}
	return out
}

// SetParam writes one named parameter without validating it.
func (c *Config) SetParam(name string, value float64) error {
	p, ok := params[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, dynamo.ErrUnknownParam)
	}
	p.set(c, value)
	return nil
}

// Nudge moves a parameter by steps increments.
func (c *Config) Nudge(name string, steps int) error {
	p, ok := params[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, dynamo.ErrUnknownParam)
	}
	p.set(c, p.get(c)+float64(steps)*p.step)
	return nil
}

func ParamNames() []string {
	names := make([]string, 0, len(params))
	for n := range params {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
