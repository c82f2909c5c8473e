package viz

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/seismograph/internal/cloth"
	"github.com/san-kum/seismograph/internal/trace"
)

// Camera orbits the origin and projects world points onto a canvas.
type Camera struct {
	Distance   float64
	Yaw, Pitch float64
	Zoom       float64
	Target     r3.Vec
}

func NewCamera() *Camera {
	return &Camera{Distance: 12, Yaw: 0.9, Pitch: 0.35, Zoom: 1, Target: r3.Vec{Y: 2}}
}

func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = math.Max(-1.4, math.Min(1.4, c.Pitch+dPitch))
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(8, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.2, c.Zoom/1.2) }

// view rotates p into camera space: X right, Y up, Z towards the viewer.
func (c *Camera) view(p r3.Vec) r3.Vec {
	p = r3.Sub(p, c.Target)
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	p.X, p.Z = p.X*cy-p.Z*sy, p.X*sy+p.Z*cy
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	p.Y, p.Z = p.Y*cp-p.Z*sp, p.Y*sp+p.Z*cp
	return p
}

// Project returns dot coordinates and depth. ok is false for points behind
// the camera; points off the canvas are still returned.
func (c *Camera) Project(p r3.Vec, w, h int) (int, int, float64, bool) {
	v := c.view(p)
	depth := c.Distance - v.Z
	if depth <= 0.1 {
		return 0, 0, 0, false
	}
	scale := c.Zoom * float64(min(w, h)) / depth
	sx := int(v.X*scale) + w/2
	sy := int(-v.Y*scale) + h/2
	return sx, sy, depth, true
}

type Edge struct{ Start, End r3.Vec }

type Wireframe struct{ Edges []Edge }

func (w *Wireframe) Add(a, b r3.Vec) { w.Edges = append(w.Edges, Edge{a, b}) }

// BandWireframe samples every stride-th row and the two band edges plus
// the centre line.
func BandWireframe(b *cloth.Band, stride int) *Wireframe {
	if stride < 1 {
		stride = 1
	}
	opts := b.Options()
	L, W := opts.Length, opts.Width
	wf := &Wireframe{}
	for _, j := range []int{0, W / 2, W - 1} {
		for i := 0; i < L; i++ {
			wf.Add(b.Particle(i, j).Position, b.Particle((i+1)%L, j).Position)
		}
	}
	for i := 0; i < L; i += stride {
		wf.Add(b.Particle(i, 0).Position, b.Particle(i, W-1).Position)
	}
	return wf
}

// LineWireframe joins consecutive trace line vertices.
func LineWireframe(l *trace.Line, b *cloth.Band) *Wireframe {
	vs := l.Vertices(b.Track())
	wf := &Wireframe{}
	for i := 1; i < len(vs); i++ {
		wf.Add(vs[i-1], vs[i])
	}
	return wf
}

// Render3D draws far edges first so near ones stay readable.
func Render3D(c *Canvas, cam *Camera, frames ...*Wireframe) {
	type projected struct {
		x1, y1, x2, y2 int
		depth          float64
	}
	w, h := c.DotsX(), c.DotsY()
	var proj []projected
	for _, wf := range frames {
		for _, e := range wf.Edges {
			x1, y1, d1, v1 := cam.Project(e.Start, w, h)
			x2, y2, d2, v2 := cam.Project(e.End, w, h)
			if v1 && v2 {
				proj = append(proj, projected{x1, y1, x2, y2, (d1 + d2) / 2})
			}
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth > proj[j].depth })
	for _, p := range proj {
		c.Line(p.x1, p.y1, p.x2, p.y2)
	}
}
