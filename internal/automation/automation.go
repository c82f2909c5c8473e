package automation

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/sim"
)

// Scenario scripts a headless run: a starting configuration plus control
// events fired at fixed frame indices.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Preset      string  `yaml:"preset"`
	Frames      int     `yaml:"frames"`
	Dt          float64 `yaml:"dt"`
	Events      []Event `yaml:"events"`
}

// Event is one control action. At counts frames stepped since the run
// started and is unaffected by a reset.
type Event struct {
	At     int     `yaml:"at"`
	Action string  `yaml:"action"`
	Param  string  `yaml:"param,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	Steps  int     `yaml:"steps,omitempty"`
}

const (
	ActionSet    = "set"
	ActionNudge  = "nudge"
	ActionPause  = "pause"
	ActionResume = "resume"
	ActionTrace  = "trace"
	ActionGrid   = "grid"
	ActionMode   = "mode"
	ActionReset  = "reset"
)

const defaultDt = 1.0 / 60

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Dt == 0 {
		sc.Dt = defaultDt
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	if sc.Frames <= 0 {
		return fmt.Errorf("scenario %q: frames must be positive: %w", sc.Name, dynamo.ErrParameterBounds)
	}
	if sc.Dt <= 0 {
		return fmt.Errorf("scenario %q: dt must be positive: %w", sc.Name, dynamo.ErrParameterBounds)
	}
	for i, ev := range sc.Events {
		if ev.At < 0 || ev.At >= sc.Frames {
			return fmt.Errorf("scenario %q: event %d at frame %d outside run: %w", sc.Name, i+1, ev.At, dynamo.ErrParameterBounds)
		}
		switch ev.Action {
		case ActionSet, ActionNudge:
			if ev.Param == "" {
				return fmt.Errorf("scenario %q: event %d: %s needs a param", sc.Name, i+1, ev.Action)
			}
		case ActionPause, ActionResume, ActionTrace, ActionGrid, ActionMode, ActionReset:
		default:
			return fmt.Errorf("scenario %q: event %d: unknown action %q", sc.Name, i+1, ev.Action)
		}
	}
	return nil
}

// Config resolves the scenario preset on top of base. An empty preset keeps
// base as is.
func (sc *Scenario) Config(base *config.Config) (*config.Config, error) {
	if sc.Preset == "" {
		return base.Clone(), nil
	}
	cfg := config.GetPreset(sc.Preset)
	if cfg == nil {
		return nil, fmt.Errorf("scenario %q: unknown preset %q", sc.Name, sc.Preset)
	}
	cfg.Sim.Seed = base.Sim.Seed
	return cfg, nil
}

// RunScenario steps d through the scenario and returns every unpaused
// frame. Events sharing a frame fire in file order.
func RunScenario(ctx context.Context, sc *Scenario, d *sim.Driver, logger *log.Logger) ([]dynamo.FrameStats, error) {
	events := make([]Event, len(sc.Events))
	copy(events, sc.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].At < events[j].At })

	rec := sim.NewRecorder(0)
	d.AddObserver(rec)

	next := 0
	for frame := 0; frame < sc.Frames; frame++ {
		for next < len(events) && events[next].At == frame {
			ev := events[next]
			next++
			if err := apply(d, ev); err != nil {
				return rec.Frames(), fmt.Errorf("scenario %q: event %d (%s): %w", sc.Name, next, ev.Action, err)
			}
			if logger != nil {
				logger.Debug("event", "frame", frame, "action", ev.Action, "param", ev.Param)
			}
		}
		if err := d.Run(ctx, 1, sc.Dt, nil); err != nil {
			return rec.Frames(), err
		}
	}

	return rec.Frames(), nil
}

func apply(d *sim.Driver, ev Event) error {
	switch ev.Action {
	case ActionSet:
		next := d.Config()
		if err := next.SetParam(ev.Param, ev.Value); err != nil {
			return err
		}
		return d.Apply(next)
	case ActionNudge:
		steps := ev.Steps
		if steps == 0 {
			steps = 1
		}
		return d.Nudge(ev.Param, steps)
	case ActionPause:
		return d.Update(func(c *config.Config) { c.Sim.Paused = true })
	case ActionResume:
		return d.Update(func(c *config.Config) { c.Sim.Paused = false })
	case ActionTrace:
		return d.ToggleTrace()
	case ActionGrid:
		return d.ToggleGrid()
	case ActionMode:
		return d.ToggleMode()
	case ActionReset:
		d.Reset()
		return nil
	}
	return fmt.Errorf("unknown action %q", ev.Action)
}
