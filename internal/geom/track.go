package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DrumClearance is the gap kept between the band edge and the opposite drum.
const DrumClearance = 0.1

// Track is the racetrack loop the band follows: two straights joined by two
// half circles around the roller axes. The loop lies in the Y-Z plane and the
// band width extends along X.
type Track struct {
	LeftZ     float64 // left roller axis
	RightZ    float64 // right roller axis
	Radius    float64 // roller radius
	CenterY   float64 // height of both roller axes
	BandWidth float64
}

// Centered returns a track whose rollers sit symmetrically about z=0.
func Centered(distance, radius, bandWidth, centerY float64) *Track {
	return &Track{
		LeftZ:     -distance / 2,
		RightZ:    distance / 2,
		Radius:    radius,
		CenterY:   centerY,
		BandWidth: bandWidth,
	}
}

// MinDrumDistance is the closest roller spacing at which the full band width
// stays visible between the drums.
func MinDrumDistance(radius, bandWidth float64) float64 {
	return 2*radius + bandWidth + DrumClearance
}

// MaxDrumDistance is the widest spacing offered by the conveyor controls.
func MaxDrumDistance(radius, bandWidth float64) float64 {
	return MinDrumDistance(radius, bandWidth) + 1.0
}

func (tr *Track) Straight() float64 { return math.Abs(tr.RightZ - tr.LeftZ) }
func (tr *Track) Arc() float64      { return math.Pi * tr.Radius }
func (tr *Track) Length() float64   { return 2*tr.Straight() + 2*tr.Arc() }
func (tr *Track) TopY() float64     { return tr.CenterY + tr.Radius }
func (tr *Track) BottomY() float64  { return tr.CenterY - tr.Radius }

// Position maps a loop parameter t (wrapping, [0,1)) and a width parameter w
// ([-0.5,0.5]) to a point on the band.
//
// The loop is split by cumulative length into front straight, right arc,
// back straight and left arc. A t exactly on a boundary belongs to the
// earlier segment. Roller geometry is read on every call, so edits to the
// track reparametrize the curve immediately.
func (tr *Track) Position(t, w float64) r3.Vec {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	x := w * tr.BandWidth
	r := tr.Radius
	z0, z1 := tr.LeftZ, tr.RightZ

	straight := tr.Straight()
	arc := tr.Arc()
	total := 2*straight + 2*arc
	if total <= 0 {
		return r3.Vec{X: x, Y: tr.CenterY, Z: z0}
	}
	pStraight := straight / total
	pArc := arc / total

	switch {
	case t < pStraight:
		lt := t / pStraight
		return r3.Vec{X: x, Y: tr.CenterY - r, Z: z0 + (z1-z0)*lt}
	case t < pStraight+pArc:
		lt := (t - pStraight) / pArc
		return tr.arcPoint(x, z1, math.Pi+lt*math.Pi)
	case t < 2*pStraight+pArc:
		lt := (t - (pStraight + pArc)) / pStraight
		return r3.Vec{X: x, Y: tr.CenterY + r, Z: z1 - (z1-z0)*lt}
	case pArc > 0:
		lt := (t - (2*pStraight + pArc)) / pArc
		return tr.arcPoint(x, z0, lt*math.Pi)
	default:
		return r3.Vec{X: x, Y: tr.CenterY - r, Z: z0}
	}
}

// arcPoint places angle a on the half circle around (CenterY, zc). Angle 0 is
// the top of the roller and pi the bottom; the sweep bulges away from the
// opposite roller.
func (tr *Track) arcPoint(x, zc, a float64) r3.Vec {
	dir := 1.0
	if tr.RightZ < tr.LeftZ {
		dir = -1
	}
	return r3.Vec{
		X: x,
		Y: tr.CenterY + tr.Radius*math.Cos(a),
		Z: zc - dir*tr.Radius*math.Sin(a),
	}
}
