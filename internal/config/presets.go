package config

import "sort"

var Presets = map[string]*Config{
	// quality levels trade band resolution for solver cost
	"low": preset(func(c *Config) {
		c.Conveyor.BandLength = 80
		c.Sim.Iterations = 10
	}),
	"medium": preset(func(c *Config) {
		c.Conveyor.BandLength = 100
		c.Sim.Iterations = 15
	}),
	"high": preset(func(c *Config) {
		c.Conveyor.BandLength = 120
		c.Sim.Iterations = 20
	}),

	"calm": preset(func(c *Config) {
		c.Signal.Amplitude = 0.2
		c.Signal.Frequency = 0.5
		c.Signal.Microseism = 0.2
		c.Drum.RotationSpeed = 0.3
	}),
	"quake": preset(func(c *Config) {
		c.Signal.Amplitude = 1.8
		c.Signal.Frequency = 3.5
		c.Signal.Microseism = 0.3
		c.Drum.RotationSpeed = 1.2
		c.Sim.TraceRunning = true
	}),
	"sag": preset(func(c *Config) {
		c.Sim.Mode = "dynamic"
		c.Paper.Stiffness = 0.6
		c.Paper.Tension = 0.05
		c.Conveyor.BandLength = 100
		c.Sim.Iterations = 15
	}),
}

func preset(edit func(c *Config)) *Config {
	c := DefaultConfig()
	edit(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
