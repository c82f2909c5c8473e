package trace

import (
	"image"
	"image/color"
	"image/draw"
)

// Raster is a fixed size RGBA image that scrolls horizontally.
type Raster struct {
	img  *image.RGBA
	clip image.Rectangle
}

func NewRaster(w, h int, bg color.RGBA) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r := &Raster{img: img, clip: img.Rect}
	r.Fill(bg)
	return r
}

func (r *Raster) Width() int             { return r.img.Rect.Dx() }
func (r *Raster) Height() int            { return r.img.Rect.Dy() }
func (r *Raster) Image() *image.RGBA     { return r.img }
func (r *Raster) Pix() []uint8           { return r.img.Pix }
func (r *Raster) At(x, y int) color.RGBA { return r.img.RGBAAt(x, y) }

func (r *Raster) Fill(c color.RGBA) {
	draw.Draw(r.img, r.img.Rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// FillColumns paints columns [x0,x1) clamped to the raster.
func (r *Raster) FillColumns(x0, x1 int, c color.RGBA) {
	rect := image.Rect(x0, 0, x1, r.Height()).Intersect(r.img.Rect)
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// ShiftLeft moves columns [s,W) to [0,W-s). The right strip keeps its old
// pixels until repainted. Shifts outside (0,W) leave the raster untouched;
// use Scroll to also clear.
func (r *Raster) ShiftLeft(s int) {
	w := r.Width()
	if s <= 0 || s >= w {
		return
	}
	stride := r.img.Stride
	for y := 0; y < r.Height(); y++ {
		row := r.img.Pix[y*stride : y*stride+4*w]
		copy(row, row[4*s:])
	}
}

// Scroll shifts left by s and clears the uncovered strip to bg. A shift of
// W or more clears the whole raster. It returns the first column of the
// strip, W when nothing moved.
func (r *Raster) Scroll(s int, bg color.RGBA) int {
	w := r.Width()
	if s <= 0 {
		return w
	}
	if s >= w {
		r.Fill(bg)
		return 0
	}
	r.ShiftLeft(s)
	r.FillColumns(w-s, w, bg)
	return w - s
}

// Clip restricts Set, VLine and Line to rect until Unclip.
func (r *Raster) Clip(rect image.Rectangle) { r.clip = rect.Intersect(r.img.Rect) }
func (r *Raster) Unclip()                   { r.clip = r.img.Rect }

func (r *Raster) Set(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(r.clip) {
		return
	}
	r.img.SetRGBA(x, y, c)
}

// VLine draws a vertical stroke of the given width centred on x.
func (r *Raster) VLine(x, y0, y1, width int, c color.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if width < 1 {
		width = 1
	}
	left := x - width/2
	rect := image.Rect(left, y0, left+width, y1+1).Intersect(r.clip)
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Line draws a Bresenham line with a square brush of the given width.
func (r *Raster) Line(x0, y0, x1, y1, width int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		r.dot(x0, y0, width, c)
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

func (r *Raster) dot(x, y, width int, c color.RGBA) {
	if width <= 1 {
		r.Set(x, y, c)
		return
	}
	off := width / 2
	rect := image.Rect(x-off, y-off, x-off+width, y-off+width).Intersect(r.clip)
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Snapshot returns a copy safe to hold across frames.
func (r *Raster) Snapshot() *image.RGBA {
	out := image.NewRGBA(r.img.Rect)
	copy(out.Pix, r.img.Pix)
	return out
}

// Colors copies the pixels into dst, growing it when short.
func (r *Raster) Colors(dst []color.RGBA) []color.RGBA {
	n := r.Width() * r.Height()
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]
	p := r.img.Pix
	for k := range dst {
		dst[k] = color.RGBA{R: p[4*k], G: p[4*k+1], B: p[4*k+2], A: p[4*k+3]}
	}
	return dst
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
