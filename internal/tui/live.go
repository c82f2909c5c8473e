package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/sim"
	"github.com/san-kum/seismograph/internal/viz"
)

const (
	liveCols    = 70
	liveRows    = 8
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer is a frame observer that repaints the drum paper and the
// trace line on a plain terminal, for headless runs without bubbletea.
type LiveRenderer struct {
	driver    *sim.Driver
	out       io.Writer
	frameRate int
	lastFrame time.Time
	drum      *viz.Canvas
	trace     *viz.Canvas
}

func NewLiveRenderer(d *sim.Driver, out io.Writer, fps int) *LiveRenderer {
	if fps <= 0 {
		fps = frameRate
	}
	return &LiveRenderer{
		driver:    d,
		out:       out,
		frameRate: fps,
		drum:      viz.NewCanvas(liveCols, liveRows),
		trace:     viz.NewCanvas(liveCols, liveRows/2),
	}
}

func (r *LiveRenderer) OnFrame(s dynamo.FrameStats) {
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	r.drum.Clear()
	r.drum.DrawRaster(r.driver.Drum().Raster().Image(), inkCutoff)
	r.trace.Clear()
	r.trace.Plot(r.driver.Line().Samples(), 1.2)

	r.render(s)
}

func (r *LiveRenderer) render(s dynamo.FrameStats) {
	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  seismograph  frame=%d  t=%.2fs  phase=%.3f  strain=%.4f\n", s.Frame, s.Time, s.Phase, s.Strain)
	b.WriteString("  " + strings.Repeat("-", liveCols) + "\n")
	for _, row := range strings.Split(r.drum.String(), "\n") {
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("  " + strings.Repeat("-", liveCols) + "\n")
	for _, row := range strings.Split(r.trace.String(), "\n") {
		b.WriteString("  " + row + "\n")
	}
	fmt.Fprintf(&b, "  sample=%+.3f  drum=%.2frad\n", s.Sample, s.DrumAngle)
	io.WriteString(r.out, b.String())
}

func (r *LiveRenderer) Start() { io.WriteString(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { io.WriteString(r.out, showCursor) }
