package cloth

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/geom"
)

type Mode int

const (
	SteadyState Mode = iota
	Dynamic
)

func (m Mode) String() string {
	switch m {
	case SteadyState:
		return "steady"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "steady", "steady_state", "steadystate":
		return SteadyState, nil
	case "dynamic":
		return Dynamic, nil
	default:
		return SteadyState, fmt.Errorf("unknown band mode %q: %w", s, dynamo.ErrParameterBounds)
	}
}

const (
	MinLength = 3
	MinWidth  = 2
)

type Options struct {
	Length     int
	Width      int
	Mode       Mode
	Pins       PinPolicy
	LoopSpeed  float64
	Stiffness  float64
	Tension    float64
	Gravity    float64
	Iterations int
}

func DefaultOptions() Options {
	return Options{
		Length:     180,
		Width:      16,
		Mode:       SteadyState,
		Pins:       DefaultPins(),
		LoopSpeed:  0.01,
		Stiffness:  0.8,
		Tension:    0.1,
		Gravity:    9.8,
		Iterations: 12,
	}
}

// Band is the particle grid wrapped around a track.
type Band struct {
	track       *geom.Track
	opts        Options
	particles   []Particle
	constraints []Constraint
	mesh        *Mesh
	phase       float64
	time        float64
}

func New(track *geom.Track, opts Options) (*Band, error) {
	b := &Band{}
	if err := b.Rebuild(track, opts); err != nil {
		return nil, err
	}
	return b, nil
}

// Rebuild discards the grid, constraints and mesh and builds new ones for
// track and opts. On error the band is left unchanged.
func (b *Band) Rebuild(track *geom.Track, opts Options) error {
	if opts.Length < MinLength || opts.Width < MinWidth {
		return fmt.Errorf("band %dx%d: %w", opts.Length, opts.Width, dynamo.ErrInvalidGrid)
	}
	if opts.Pins == nil {
		opts.Pins = NoPins{}
	}

	L, W := opts.Length, opts.Width
	ps := make([]Particle, 0, L*W)
	for i := 0; i < L; i++ {
		for j := 0; j < W; j++ {
			pos := track.Position(float64(i)/float64(L), widthParam(j, W))
			ps = append(ps, NewParticle(pos, opts.Pins.Pinned(i, j, L, W)))
		}
	}

	cs := make([]Constraint, 0, L*W+L*(W-1))
	for i := 0; i < L; i++ {
		next := (i + 1) % L
		for j := 0; j < W; j++ {
			cs = append(cs, NewConstraint(ps, i*W+j, next*W+j, AlongBelt))
		}
	}
	for i := 0; i < L; i++ {
		for j := 0; j < W-1; j++ {
			cs = append(cs, NewConstraint(ps, i*W+j, i*W+j+1, AcrossWidth))
		}
	}

	mesh := NewMesh(L, W)
	if err := mesh.Sync(ps); err != nil {
		return err
	}

	b.track = track
	b.opts = opts
	b.particles = ps
	b.constraints = cs
	b.mesh = mesh
	b.phase = 0
	b.time = 0
	return nil
}

// Tune applies the non-sizing fields of opts in place. A change of grid
// size needs Rebuild.
func (b *Band) Tune(opts Options) error {
	if opts.Length != b.opts.Length || opts.Width != b.opts.Width {
		return fmt.Errorf("tune %dx%d on %dx%d band: %w",
			opts.Length, opts.Width, b.opts.Length, b.opts.Width, dynamo.ErrBufferMismatch)
	}
	if opts.Pins == nil {
		opts.Pins = NoPins{}
	}
	W := opts.Width
	for k := range b.particles {
		b.particles[k].Fixed = opts.Pins.Pinned(k/W, k%W, opts.Length, W)
	}
	b.opts = opts
	return nil
}

func (b *Band) Advance(dt float64) {
	b.time += dt
	b.phase = wrap(b.phase + b.opts.LoopSpeed*dt)

	switch b.opts.Mode {
	case Dynamic:
		b.advanceDynamic(dt)
	default:
		b.advanceSteady()
	}

	b.syncMesh()
}

// syncMesh panics on a size mismatch; grid and mesh are always rebuilt
// together.
func (b *Band) syncMesh() {
	if err := b.mesh.Sync(b.particles); err != nil {
		panic(err)
	}
}

func (b *Band) advanceSteady() {
	W := b.opts.Width
	for k := range b.particles {
		b.particles[k].Snap(b.pathPoint(k/W, k%W))
	}
}

func (b *Band) advanceDynamic(dt float64) {
	W := b.opts.Width
	g := r3.Vec{Y: -b.opts.Gravity * (1 - b.opts.Tension)}
	for k := range b.particles {
		p := &b.particles[k]
		if p.Fixed {
			p.Snap(b.pathPoint(k/W, k%W))
			continue
		}
		p.AddForce(g)
		p.Integrate(dt)
	}
	Relax(b.particles, b.constraints, b.opts.Iterations, b.opts.Stiffness)
}

func (b *Band) pathPoint(i, j int) r3.Vec {
	t := wrap(float64(i)/float64(b.opts.Length) + b.phase)
	return b.track.Position(t, widthParam(j, b.opts.Width))
}

// Reset returns every particle to its rest position and zeroes phase and time.
func (b *Band) Reset() {
	for k := range b.particles {
		b.particles[k].Reset()
	}
	b.phase = 0
	b.time = 0
	b.syncMesh()
}

// Strain is the largest relative constraint deviation.
func (b *Band) Strain() float64 {
	worst := 0.0
	for _, c := range b.constraints {
		if s := c.Strain(b.particles); s > worst {
			worst = s
		}
	}
	return worst
}

func (b *Band) FixedCount() int {
	n := 0
	for _, p := range b.particles {
		if p.Fixed {
			n++
		}
	}
	return n
}

func (b *Band) Phase() float64             { return b.phase }
func (b *Band) Time() float64              { return b.time }
func (b *Band) Track() *geom.Track         { return b.track }
func (b *Band) Options() Options           { return b.opts }
func (b *Band) Mesh() *Mesh                { return b.mesh }
func (b *Band) Particles() []Particle      { return b.particles }
func (b *Band) Constraints() []Constraint  { return b.constraints }
func (b *Band) Particle(i, j int) Particle { return b.particles[i*b.opts.Width+j] }

func widthParam(j, width int) float64 {
	return float64(j)/float64(width-1) - 0.5
}

func wrap(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}
