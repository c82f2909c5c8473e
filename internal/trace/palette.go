package trace

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
)

var (
	PaperColor = color.RGBA{R: 0xFF, G: 0xFE, B: 0xF0, A: 0xFF}
	GridColor  = color.RGBA{R: 0xDD, G: 0xDD, B: 0xCC, A: 0xFF}
	BeltColor  = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	InkBlack   = color.RGBA{A: 0xFF}
)

// InkColor maps a hue in degrees to a dark, saturated pen colour. A negative
// or non-finite hue gives black ink.
func InkColor(hue float64) color.RGBA {
	if hue < 0 || math.IsNaN(hue) || math.IsInf(hue, 0) {
		return InkBlack
	}
	hue = math.Mod(hue, 360)
	r, g, b, err := colorconv.HSVToRGB(hue, 0.85, 0.45)
	if err != nil {
		return InkBlack
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
