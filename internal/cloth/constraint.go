package cloth

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type ConstraintKind int

const (
	// AlongBelt joins consecutive rows and wraps from the last row to the first.
	AlongBelt ConstraintKind = iota
	// AcrossWidth joins neighbouring columns of one row.
	AcrossWidth
)

func (k ConstraintKind) String() string {
	switch k {
	case AlongBelt:
		return "along"
	case AcrossWidth:
		return "across"
	default:
		return "unknown"
	}
}

// Constraint keeps two particles, addressed by index, at a fixed distance.
type Constraint struct {
	A, B       int
	RestLength float64
	Kind       ConstraintKind
}

// NewConstraint records the current separation of a and b as rest length.
func NewConstraint(ps []Particle, a, b int, kind ConstraintKind) Constraint {
	return Constraint{
		A:          a,
		B:          b,
		RestLength: r3.Norm(r3.Sub(ps[b].Position, ps[a].Position)),
		Kind:       kind,
	}
}

// Satisfy moves both free endpoints by half the signed deviation from the
// rest length, scaled by stiffness. Coincident endpoints are left alone.
func (c Constraint) Satisfy(ps []Particle, stiffness float64) {
	pa, pb := &ps[c.A], &ps[c.B]
	d := r3.Sub(pb.Position, pa.Position)
	dist := r3.Norm(d)
	if dist == 0 {
		return
	}
	corr := r3.Scale(stiffness*0.5*(dist-c.RestLength)/dist, d)
	if !pa.Fixed {
		pa.Position = r3.Add(pa.Position, corr)
	}
	if !pb.Fixed {
		pb.Position = r3.Sub(pb.Position, corr)
	}
}

// Strain is |dist-rest|/rest, or zero for a zero rest length.
func (c Constraint) Strain(ps []Particle) float64 {
	if c.RestLength == 0 {
		return 0
	}
	dist := r3.Norm(r3.Sub(ps[c.B].Position, ps[c.A].Position))
	return math.Abs(dist-c.RestLength) / c.RestLength
}

// Relax runs iterations passes of Satisfy over cs in order.
func Relax(ps []Particle, cs []Constraint, iterations int, stiffness float64) {
	for it := 0; it < iterations; it++ {
		for _, c := range cs {
			c.Satisfy(ps, stiffness)
		}
	}
}
