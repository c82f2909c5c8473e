package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/sim"
	"github.com/san-kum/seismograph/internal/viz"
)

const (
	frameRate = 30
	frameDt   = 1.0 / frameRate

	drumCols  = 64
	drumRows  = 8
	sceneCols = 64
	sceneRows = 16
	inkCutoff = 160

	graphHeight = 6
	graphWidth  = 60
	historyLen  = 60
)

var presetInfo = map[string]string{
	"default": "base configuration",
	"low":     "coarse band, fast solver",
	"medium":  "balanced band resolution",
	"high":    "fine band, more iterations",
	"calm":    "quiet ground, slow drum",
	"quake":   "large shocks, trace running",
	"sag":     "dynamic band under gravity",
}

type state int

const (
	stateMenu state = iota
	stateSim
)

// Factory builds a driver for a preset name. "default" selects the base
// configuration.
type Factory func(preset string) (*sim.Driver, error)

type model struct {
	state   state
	cursor  int
	presets []string
	factory Factory
	preset  string

	driver      *sim.Driver
	stats       dynamo.FrameStats
	paramNames  []string
	paramCursor int
	history     []float64

	show3D bool
	camera *viz.Camera
	meter  *viz.Meter
	theme  int
	styles viz.Styles

	err    error
	width  int
	height int
}

// NewInteractiveApp opens on the preset menu.
func NewInteractiveApp(factory Factory) *model {
	m := newModel()
	m.factory = factory
	m.presets = append([]string{"default"}, config.ListPresets()...)
	return m
}

// NewLiveApp skips the menu and drives d directly.
func NewLiveApp(d *sim.Driver) *model {
	m := newModel()
	m.state = stateSim
	m.driver = d
	m.preset = "custom"
	return m
}

func newModel() *model {
	return &model{
		paramNames: config.ParamNames(),
		camera:     viz.NewCamera(),
		meter:      viz.NewMeter(frameRate, 6, 0.4),
		styles:     viz.NewStyles(viz.Themes[0]),
		history:    make([]float64, 0, historyLen),
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd {
	if m.state == stateSim {
		return tick()
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim || m.driver == nil {
			return m, nil
		}
		m.step()
		return m, tick()
	}
	return m, nil
}

func (m *model) step() {
	m.stats = m.driver.Step(frameDt)
	if m.stats.Paused {
		return
	}
	m.meter.Step(m.stats.Sample)
	m.history = append(m.history, m.stats.Strain)
	if len(m.history) > historyLen {
		m.history = m.history[1:]
	}
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateSim:
		return m.simKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		name := m.presets[m.cursor]
		d, err := m.factory(name)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.driver = d
		m.preset = name
		m.err = nil
		m.state = stateSim
		m.history = m.history[:0]
		m.meter.Reset()
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m model) simKey(msg tea.KeyMsg) (model, tea.Cmd) {
	var err error
	switch msg.String() {
	case "q", "esc":
		if m.factory == nil {
			return m, tea.Quit
		}
		m.state = stateMenu
		m.driver = nil
		return m, tea.ClearScreen
	case " ", "p":
		err = m.driver.TogglePause()
	case "r":
		m.driver.Reset()
		m.history = m.history[:0]
		m.meter.Reset()
	case "g":
		err = m.driver.ToggleGrid()
	case "s":
		err = m.driver.ToggleTrace()
	case "m":
		err = m.driver.ToggleMode()
	case "tab":
		m.paramCursor = (m.paramCursor + 1) % len(m.paramNames)
	case "shift+tab":
		m.paramCursor = (m.paramCursor + len(m.paramNames) - 1) % len(m.paramNames)
	case "up", "+", "=":
		err = m.driver.Nudge(m.paramNames[m.paramCursor], 1)
	case "down", "-":
		err = m.driver.Nudge(m.paramNames[m.paramCursor], -1)
	case "v":
		m.show3D = !m.show3D
	case "left", "h":
		m.camera.Orbit(-0.1, 0)
	case "right", "l":
		m.camera.Orbit(0.1, 0)
	case "[":
		m.camera.ZoomOut()
	case "]":
		m.camera.ZoomIn()
	case "t":
		m.theme = (m.theme + 1) % len(viz.Themes)
		m.styles = viz.NewStyles(viz.Themes[m.theme])
	}
	m.err = err
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateSim:
		return m.viewSim()
	}
	return ""
}

func (m model) viewMenu() string {
	st := m.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(st.KeyHint.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + st.Title.Render("s e i s m o g r a p h") + "\n")
	b.WriteString(st.KeyHint.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString("      " + st.Active.Render("▸ "+fmt.Sprintf("%-10s", name)) + st.Value.Render(desc) + "\n")
		} else {
			b.WriteString("        " + st.Value.Render(fmt.Sprintf("%-10s", name)) + st.KeyHint.Render(desc) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n      " + st.Error.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n" + st.KeyHint.Render("      ↑↓ select   enter start   q quit") + "\n")
	return b.String()
}

func (m model) viewSim() string {
	st := m.styles
	cfg := m.driver.Config()
	var b strings.Builder

	status := st.Running.Render("● running")
	if cfg.Sim.Paused {
		status = st.Paused.Render("○ paused")
	}
	fmt.Fprintf(&b, "\n  %s  %s  %s\n\n", st.Title.Render("seismograph"), st.Active.Render(m.preset), status)

	var scene string
	if m.show3D {
		c := viz.NewCanvas(sceneCols, sceneRows)
		band := m.driver.Band()
		viz.Render3D(c, m.camera, viz.BandWireframe(band, 4), viz.LineWireframe(m.driver.Line(), band))
		scene = st.Panel.Render(st.Ink.Render(c.String()))
	} else {
		c := viz.NewCanvas(drumCols, drumRows)
		c.DrawRaster(m.driver.Drum().Raster().Image(), inkCutoff)
		scene = st.Panel.Render(st.Section.Render("drum") + "\n" + st.Ink.Render(c.String()))
	}

	side := lipgloss.JoinVertical(lipgloss.Left, m.viewStats(cfg), m.viewParams(cfg))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, scene, side) + "\n")

	if cfg.Sim.TraceRunning {
		graph := asciigraph.Plot(m.driver.Line().Samples(),
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.LowerBound(-1),
			asciigraph.UpperBound(1),
			asciigraph.Caption("trace line"))
		b.WriteString(st.Panel.Render(graph) + "\n")
	}

	if m.err != nil {
		b.WriteString("  " + st.Error.Render(m.err.Error()) + "\n")
	}
	b.WriteString(st.KeyHint.Render("  space pause  r reset  g grid  s trace  m mode  tab param  ↑↓ adjust  v 3d  t theme  q back") + "\n")
	return b.String()
}

func (m model) viewStats(cfg *config.Config) string {
	st := m.styles
	s := m.stats
	lines := []string{
		st.Section.Render("state"),
		st.Row("time", fmt.Sprintf("%.2fs", s.Time)),
		st.Row("frame", fmt.Sprintf("%d", s.Frame)),
		st.Row("mode", cfg.Sim.Mode),
		st.Row("phase", fmt.Sprintf("%.3f", s.Phase)),
		st.Row("drum angle", fmt.Sprintf("%.2f rad", s.DrumAngle)),
		st.Row("strain", fmt.Sprintf("%.4f", s.Strain)),
		st.Row("sample", fmt.Sprintf("%+.3f", s.Sample)),
		st.Row("pen", st.Bar(m.meter.Value()/2, 16)),
	}
	if len(m.history) > 1 {
		lines = append(lines, st.Row("strain trend", st.Ink.Render(sparkline(m.history, 16))))
	}
	return st.Panel.Render(strings.Join(lines, "\n"))
}

func (m model) viewParams(cfg *config.Config) string {
	st := m.styles
	values := cfg.GetParams()
	lines := []string{st.Section.Render("parameters")}
	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.3f", values[name])
		if i == m.paramCursor {
			lines = append(lines, st.Active.Render(fmt.Sprintf("▸ %-15s%s", name, val)))
		} else {
			lines = append(lines, st.Value.Render(fmt.Sprintf("  %-15s%s", name, val)))
		}
	}
	return st.Panel.Render(strings.Join(lines, "\n"))
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
