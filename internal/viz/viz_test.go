package viz

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(3, 2)
	if c.DotsX() != 6 || c.DotsY() != 8 {
		t.Fatalf("dots = %dx%d", c.DotsX(), c.DotsY())
	}
	c.Set(1, 5)
	if !c.IsSet(1, 5) {
		t.Error("dot not set")
	}
	if c.IsSet(0, 5) {
		t.Error("neighbour set")
	}
	c.Set(-1, 0)
	c.Set(6, 0)
	if c.IsSet(-1, 0) || c.IsSet(6, 0) {
		t.Error("out of range dot reported set")
	}
	c.Clear()
	if c.IsSet(1, 5) {
		t.Error("clear left dot set")
	}
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("rows = %d", len(lines))
	}
	for _, l := range lines {
		if got := len([]rune(l)); got != 3 {
			t.Errorf("cols = %d", got)
		}
	}
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Line(0, 0, 19, 19)
	if !c.IsSet(0, 0) || !c.IsSet(19, 19) || !c.IsSet(10, 10) {
		t.Error("diagonal line missing dots")
	}
}

func TestDrawRasterThreshold(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if x < 2 {
				c = color.RGBA{A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	c := NewCanvas(2, 1)
	c.DrawRaster(img, 128)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if want := x < 2; c.IsSet(x, y) != want {
				t.Errorf("dot (%d,%d) set=%v", x, y, !want)
			}
		}
	}
}

func TestPlotFlatLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Plot([]float64{0, 0, 0, 0}, 1)
	mid := int(float64(c.DotsY()-1) * 0.5)
	for x := 0; x < c.DotsX(); x++ {
		if !c.IsSet(x, mid) {
			t.Errorf("column %d not on midline", x)
		}
	}
	c.Clear()
	c.Plot([]float64{1}, 1)
	c.Plot([]float64{1, 1}, 0)
	for x := 0; x < c.DotsX(); x++ {
		for y := 0; y < c.DotsY(); y++ {
			if c.IsSet(x, y) {
				t.Fatal("degenerate plot drew dots")
			}
		}
	}
}

func TestProjectTargetAtCentre(t *testing.T) {
	cam := NewCamera()
	x, y, depth, ok := cam.Project(cam.Target, 100, 60)
	if !ok {
		t.Fatal("target not visible")
	}
	if x != 50 || y != 30 {
		t.Errorf("target at (%d,%d)", x, y)
	}
	if math.Abs(depth-cam.Distance) > 1e-9 {
		t.Errorf("depth = %v", depth)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := &Camera{Distance: 5, Zoom: 1}
	if _, _, _, ok := cam.Project(r3.Vec{Z: 10}, 100, 100); ok {
		t.Error("point behind camera reported visible")
	}
	if _, _, _, ok := cam.Project(r3.Vec{Z: -10}, 100, 100); !ok {
		t.Error("point in front reported hidden")
	}
}

func TestCameraLimits(t *testing.T) {
	cam := NewCamera()
	cam.Orbit(0, 10)
	if cam.Pitch > 1.4 {
		t.Errorf("pitch = %v", cam.Pitch)
	}
	for i := 0; i < 50; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 8 {
		t.Errorf("zoom = %v", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.2 {
		t.Errorf("zoom = %v", cam.Zoom)
	}
}

func TestRender3DDrawsVisibleEdges(t *testing.T) {
	cam := &Camera{Distance: 10, Zoom: 1}
	wf := &Wireframe{}
	wf.Add(r3.Vec{X: -1}, r3.Vec{X: 1})
	wf.Add(r3.Vec{Z: 20}, r3.Vec{X: 1, Z: 20})
	c := NewCanvas(20, 10)
	Render3D(c, cam, wf)
	cx, cy := c.DotsX()/2, c.DotsY()/2
	if !c.IsSet(cx, cy) {
		t.Error("front edge not drawn through centre")
	}
}

func TestMeterSettles(t *testing.T) {
	m := NewMeter(30, 6, 1)
	for i := 0; i < 90; i++ {
		m.Step(-0.8)
	}
	if math.Abs(m.Value()-0.8) > 0.01 {
		t.Errorf("value = %v, want 0.8", m.Value())
	}
	if m.Peak() < m.Value() {
		t.Errorf("peak %v below value %v", m.Peak(), m.Value())
	}
	m.Reset()
	if m.Value() != 0 || m.Peak() != 0 {
		t.Error("reset left state")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("night").Name != "night" {
		t.Error("night theme not found")
	}
	if GetTheme("missing").Name != ThemePaper.Name {
		t.Error("unknown theme should fall back to paper")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}

func TestStylesBar(t *testing.T) {
	s := NewStyles(ThemePaper)
	for _, r := range []float64{-1, 0, 0.5, 2} {
		bar := s.Bar(r, 10)
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 10 {
			t.Errorf("ratio %v: %d cells", r, n)
		}
	}
}
