package cloth

import "gonum.org/v1/gonum/spatial/r3"

// Particle is a unit point mass integrated with position Verlet.
type Particle struct {
	Position     r3.Vec
	Previous     r3.Vec
	Acceleration r3.Vec
	Rest         r3.Vec
	Fixed        bool
}

// NewParticle places a particle at rest at p.
func NewParticle(p r3.Vec, fixed bool) Particle {
	return Particle{Position: p, Previous: p, Rest: p, Fixed: fixed}
}

func (p *Particle) AddForce(f r3.Vec) {
	p.Acceleration = r3.Add(p.Acceleration, f)
}

// Integrate advances a free particle by one Verlet step. Fixed particles
// keep their position and drop any accumulated force.
func (p *Particle) Integrate(dt float64) {
	if p.Fixed {
		p.Acceleration = r3.Vec{}
		return
	}
	cur := p.Position
	vel := r3.Sub(p.Position, p.Previous)
	p.Position = r3.Add(r3.Add(cur, vel), r3.Scale(dt*dt, p.Acceleration))
	p.Previous = cur
	p.Acceleration = r3.Vec{}
}

// Snap moves the particle to pos with zero implied velocity.
func (p *Particle) Snap(pos r3.Vec) {
	p.Position = pos
	p.Previous = pos
}

func (p *Particle) Reset() {
	p.Position = p.Rest
	p.Previous = p.Rest
	p.Acceleration = r3.Vec{}
}
