package trace

import (
	"image"
	"math"

	"github.com/san-kum/seismograph/internal/signal"
)

const (
	BeltWidth  = 1024
	BeltHeight = 128

	DefaultScrollRate  = 200.0 // px/s
	DefaultStrokeWidth = 10

	beltPenScale = 0.35
)

// Belt is the paper printed onto the moving band. It scrolls at a fixed
// pixel rate and records spikes as thick vertical strokes, one per column.
type Belt struct {
	raster *Raster
	spikes *signal.Spikes

	ScrollRate  float64
	StrokeWidth int

	carry  float64
	scroll int
}

func NewBelt(spikes *signal.Spikes) *Belt {
	return &Belt{
		raster:      NewRaster(BeltWidth, BeltHeight, BeltColor),
		spikes:      spikes,
		ScrollRate:  DefaultScrollRate,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Advance scrolls by ScrollRate*dt pixels and draws one stroke per new
// column, sampled at time now. It returns the whole pixels scrolled.
func (b *Belt) Advance(dt, now float64) int {
	w, h := b.raster.Width(), b.raster.Height()
	adv := b.ScrollRate*dt + b.carry
	if adv < 0 || math.IsNaN(adv) {
		adv = 0
	}
	s := int(adv)
	b.carry = adv - float64(s)
	if s == 0 {
		return 0
	}
	if s > w {
		s = w
	}

	x0 := b.raster.Scroll(s, BeltColor)
	b.scroll += s

	centre := h / 2
	amp := float64(h) * beltPenScale
	b.raster.Clip(image.Rect(x0, 0, w, h))
	for i := 0; i < s; i++ {
		t := math.Mod(now/0.3+float64(i)/20, 2*math.Pi)
		spike := b.spikes.Sample(t, amp)
		b.raster.VLine(x0+i, centre, centre-round(spike), b.StrokeWidth, InkBlack)
	}
	b.raster.Unclip()
	return s
}

// Offset is the scroll position as a fraction of the raster width, used to
// slide the texture along the band.
func (b *Belt) Offset() float64 {
	w := b.raster.Width()
	return float64(mod(b.scroll, w)) / float64(w)
}

func (b *Belt) Reset() {
	b.carry = 0
	b.scroll = 0
	b.raster.Fill(BeltColor)
}

func (b *Belt) Raster() *Raster { return b.raster }
func (b *Belt) Scrolled() int   { return b.scroll }
