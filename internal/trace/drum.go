package trace

import (
	"image"
	"image/color"
	"math"
)

const (
	DrumWidth  = 512
	DrumHeight = 128

	gridRowSpacing = 10
	gridColSpacing = 50

	// fraction of the half height reached at full amplitude
	drumPenScale = 0.40
	drumPenWidth = 2
)

// Drum is the paper wrapped around the rotating recording drum.
type Drum struct {
	raster *Raster
	grid   bool
	ink    color.RGBA

	carry  float64
	scroll int // total columns scrolled, anchors the time grid
	lastY  float64
}

func NewDrum(grid bool, ink color.RGBA) *Drum {
	d := &Drum{
		raster: NewRaster(DrumWidth, DrumHeight, PaperColor),
		grid:   grid,
		ink:    ink,
	}
	d.Reset()
	return d
}

// Advance scrolls the paper by the distance the drum surface turned in dt
// and draws the pen from its last height to the height for displacement.
// It returns the whole pixels scrolled.
func (d *Drum) Advance(dt, displacement, amplitude, rotationSpeed float64) int {
	w := d.raster.Width()
	adv := rotationSpeed*dt/(2*math.Pi)*float64(w) + d.carry
	if adv < 0 || math.IsNaN(adv) {
		adv = 0
	}
	s := int(adv)
	d.carry = adv - float64(s)

	y := d.PenY(displacement, amplitude)
	if s == 0 {
		d.lastY = y
		return 0
	}
	if s > w {
		s = w
	}

	x0 := d.raster.Scroll(s, PaperColor)
	d.scroll += s
	if d.grid {
		d.drawGrid(x0, w)
	}

	d.raster.Clip(image.Rect(x0, 0, w, d.raster.Height()))
	px, py := x0-1, d.lastY
	for i := 0; i < s; i++ {
		t := float64(i+1) / float64(s)
		x := x0 + i
		yy := d.lastY*(1-t) + y*t
		d.raster.Line(px, round(py), x, round(yy), drumPenWidth, d.ink)
		px, py = x, yy
	}
	d.raster.Unclip()

	d.lastY = y
	return s
}

// PenY maps a displacement to a row. Zero amplitude keeps the pen centred.
func (d *Drum) PenY(displacement, amplitude float64) float64 {
	h := float64(d.raster.Height())
	if amplitude == 0 {
		return h / 2
	}
	return h/2 - displacement/amplitude*h*drumPenScale
}

// SetGrid switches the grid and repaints the background under the ink.
func (d *Drum) SetGrid(on bool) {
	if d.grid == on {
		return
	}
	d.grid = on
	w, h := d.raster.Width(), d.raster.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := d.raster.At(x, y)
			if c == PaperColor || c == GridColor {
				d.raster.Set(x, y, d.background(x, y))
			}
		}
	}
}

func (d *Drum) SetInk(c color.RGBA) { d.ink = c }

// Reset clears the paper and returns the pen to the centre line.
func (d *Drum) Reset() {
	d.carry = 0
	d.scroll = 0
	d.lastY = float64(d.raster.Height()) / 2
	d.raster.Fill(PaperColor)
	if d.grid {
		d.drawGrid(0, d.raster.Width())
	}
}

func (d *Drum) drawGrid(x0, x1 int) {
	h := d.raster.Height()
	for y := 0; y < h; y++ {
		for x := x0; x < x1; x++ {
			if c := d.background(x, y); c == GridColor {
				d.raster.Set(x, y, c)
			}
		}
	}
}

func (d *Drum) background(x, y int) color.RGBA {
	if !d.grid {
		return PaperColor
	}
	col := d.scroll - d.raster.Width() + x
	if y%gridRowSpacing == 0 || mod(col, gridColSpacing) == 0 {
		return GridColor
	}
	return PaperColor
}

func (d *Drum) Grid() bool      { return d.grid }
func (d *Drum) Raster() *Raster { return d.raster }
func (d *Drum) LastY() float64  { return d.lastY }
func (d *Drum) Scrolled() int   { return d.scroll }
func (d *Drum) Carry() float64  { return d.carry }

func round(v float64) int { return int(math.Round(v)) }

func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}
