package viz

import (
	"image"
	"strings"
)

// Braille cells hold 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a terminal bitmap drawn with braille characters. Dot coordinates
// run from (0,0) to (2*Cols-1, 4*Rows-1).
type Canvas struct {
	Cols, Rows int
	cells      [][]rune
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Cols: cols, Rows: rows, cells: make([][]rune, rows)}
	for i := range c.cells {
		c.cells[i] = make([]rune, cols)
	}
	c.Clear()
	return c
}

func (c *Canvas) DotsX() int { return 2 * c.Cols }
func (c *Canvas) DotsY() int { return 4 * c.Rows }

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.DotsX() || y >= c.DotsY() {
		return
	}
	c.cells[y/4][x/2] |= dotBits[y%4][x%2]
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.DotsX() || y >= c.DotsY() {
		return false
	}
	return c.cells[y/4][x/2]&dotBits[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for _, row := range c.cells {
		for j := range row {
			row[j] = brailleBlank
		}
	}
}

// Line draws a Bresenham line between two dots.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRaster scales img onto the canvas and sets a dot wherever the source
// pixel is darker than threshold (0-255 luma).
func (c *Canvas) DrawRaster(img *image.RGBA, threshold uint8) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	w, h := c.DotsX(), c.DotsY()
	for y := 0; y < h; y++ {
		sy := b.Min.Y + y*b.Dy()/h
		for x := 0; x < w; x++ {
			sx := b.Min.X + x*b.Dx()/w
			p := img.RGBAAt(sx, sy)
			// integer Rec. 601 luma
			luma := (299*uint32(p.R) + 587*uint32(p.G) + 114*uint32(p.B)) / 1000
			if luma < uint32(threshold) {
				c.Set(x, y)
			}
		}
	}
}

// Plot draws values left to right scaled so that [-limit, limit] spans the
// canvas height.
func (c *Canvas) Plot(values []float64, limit float64) {
	if len(values) < 2 || limit <= 0 {
		return
	}
	w, h := c.DotsX(), c.DotsY()
	toY := func(v float64) int {
		return int(float64(h-1) * (0.5 - v/(2*limit)))
	}
	px, py := 0, toY(values[0])
	for i := 1; i < len(values); i++ {
		x := i * (w - 1) / (len(values) - 1)
		y := toY(values[i])
		c.Line(px, py, x, y)
		px, py = x, y
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.cells {
		b.WriteString(string(row))
		if i < len(c.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
