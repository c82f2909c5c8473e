package sim

import (
	"github.com/san-kum/seismograph/internal/cloth"
	"github.com/san-kum/seismograph/internal/config"
)

// Shortcuts used by the interactive shells.

func (d *Driver) TogglePause() error {
	return d.Update(func(c *config.Config) { c.Sim.Paused = !c.Sim.Paused })
}

func (d *Driver) ToggleGrid() error {
	return d.Update(func(c *config.Config) { c.Drum.Grid = !c.Drum.Grid })
}

func (d *Driver) ToggleTrace() error {
	return d.Update(func(c *config.Config) { c.Sim.TraceRunning = !c.Sim.TraceRunning })
}

func (d *Driver) ToggleMode() error {
	return d.Update(func(c *config.Config) {
		if c.Sim.Mode == cloth.Dynamic.String() {
			c.Sim.Mode = cloth.SteadyState.String()
		} else {
			c.Sim.Mode = cloth.Dynamic.String()
		}
	})
}

// Nudge moves a named parameter by steps increments and applies the result,
// clamped to its valid range.
func (d *Driver) Nudge(name string, steps int) error {
	next := d.cfg.Clone()
	if err := next.Nudge(name, steps); err != nil {
		return err
	}
	return d.Apply(next)
}
