package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/seismograph/internal/viz"
)

const (
	svgBackground = "#fffef0"
	svgInk        = "#1a1a1a"
)

// CanvasToSVG writes each lit braille dot as a circle, scale pixels apart.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.DotsX()) * scale
	height := float64(canvas.DotsY()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, svgBackground, svgInk)

	r := scale * 0.4
	for y := 0; y < canvas.DotsY(); y++ {
		for x := 0; x < canvas.DotsX(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// LineToSVG draws samples left to right as a polyline. The vertical range is
// symmetric about zero so a flat line sits mid-height.
func LineToSVG(samples []float64, width, height int, stroke string) string {
	if len(samples) < 2 || width <= 0 || height <= 0 {
		return ""
	}
	if stroke == "" {
		stroke = svgInk
	}

	limit := 0.0
	for _, v := range samples {
		if v > limit {
			limit = v
		}
		if -v > limit {
			limit = -v
		}
	}
	if limit == 0 {
		limit = 1
	}
	// headroom
	limit *= 1.1

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#c8c6b9" stroke-width="0.5"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, svgBackground,
		float64(height)/2, width, float64(height)/2, stroke)

	last := float64(len(samples) - 1)
	for i, v := range samples {
		x := float64(i) / last * float64(width)
		y := float64(height) / 2 * (1 - v/limit)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString("\"/>\n</svg>")
	return sb.String()
}
