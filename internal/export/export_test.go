package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/seismograph/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 2) != "" {
		t.Error("nil canvas should give empty output")
	}

	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	svg := CanvasToSVG(c, 2)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("circles = %d, want 2", n)
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Error("size should be dots times scale")
	}
}

func TestLineToSVG(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		empty   bool
	}{
		{"too short", []float64{1}, true},
		{"flat", []float64{0, 0, 0}, false},
		{"wave", []float64{0, 1, 0, -1, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := LineToSVG(tt.samples, 100, 50, "")
			if tt.empty {
				if svg != "" {
					t.Error("expected empty output")
				}
				return
			}
			if strings.Count(svg, " L") != len(tt.samples)-1 {
				t.Errorf("segments wrong in %q", svg)
			}
			if !strings.Contains(svg, svgInk) {
				t.Error("default stroke not applied")
			}
		})
	}

	flat := LineToSVG([]float64{0, 0}, 100, 50, "red")
	if !strings.Contains(flat, "M0.0,25.0 L100.0,25.0") {
		t.Errorf("flat line not centred: %q", flat)
	}
}

func TestPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 1, color.RGBA{R: 200, A: 255})

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	back, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v", back.Bounds())
	}
	if r, _, _, _ := back.At(1, 1).RGBA(); r>>8 != 200 {
		t.Errorf("pixel red = %d", r>>8)
	}

	if err := WritePNG(&buf, nil); err == nil {
		t.Error("nil image should fail")
	}

	path := filepath.Join(t.TempDir(), "drum.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("file not written")
	}
}
