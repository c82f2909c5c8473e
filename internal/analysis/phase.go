package analysis

import (
	"math"
	"strings"
)

type Point struct{ X, Y float64 }

// PhasePortrait pairs each sample with its finite-difference rate of
// change, giving the (displacement, velocity) trajectory of the pen.
func PhasePortrait(samples []float64, dt float64) []Point {
	if len(samples) < 2 || dt <= 0 {
		return nil
	}
	out := make([]Point, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		out = append(out, Point{X: samples[i], Y: (samples[i] - samples[i-1]) / dt})
	}
	return out
}

// PhasePortraitToASCII scatters points onto a width x height grid with
// axes drawn where they cross the visible range.
func PhasePortraitToASCII(points []Point, width, height int) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for _, p := range points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// ZeroCrossings returns the interpolated times of upward crossings of zero.
func ZeroCrossings(samples []float64, dt float64) []float64 {
	var out []float64
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if prev < 0 && cur >= 0 {
			frac := -prev / (cur - prev)
			out = append(out, (float64(i-1)+frac)*dt)
		}
	}
	return out
}

// CrossingFrequency estimates the dominant frequency from the mean spacing
// of upward zero crossings. Fewer than two crossings give zero.
func CrossingFrequency(samples []float64, dt float64) float64 {
	zc := ZeroCrossings(samples, dt)
	if len(zc) < 2 {
		return 0
	}
	period := (zc[len(zc)-1] - zc[0]) / float64(len(zc)-1)
	if period <= 0 {
		return 0
	}
	return 1 / period
}
