package cloth

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/geom"
)

func testTrack() *geom.Track {
	return geom.Centered(2.8, 0.35, 1.5, 2.0)
}

func TestNewCounts(t *testing.T) {
	tests := []struct {
		length, width int
	}{
		{3, 2},
		{20, 4},
		{180, 16},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.Length, opts.Width = tt.length, tt.width
		b, err := New(testTrack(), opts)
		if err != nil {
			t.Fatalf("%dx%d: %v", tt.length, tt.width, err)
		}
		if got, want := len(b.Particles()), tt.length*tt.width; got != want {
			t.Errorf("%dx%d: %d particles, want %d", tt.length, tt.width, got, want)
		}
		want := tt.length*tt.width + tt.length*(tt.width-1)
		if got := len(b.Constraints()); got != want {
			t.Errorf("%dx%d: %d constraints, want %d", tt.length, tt.width, got, want)
		}
		if got, want := len(b.Mesh().Indices), 6*tt.length*(tt.width-1); got != want {
			t.Errorf("%dx%d: %d indices, want %d", tt.length, tt.width, got, want)
		}
	}
}

func TestNewInvalidGrid(t *testing.T) {
	for _, dims := range [][2]int{{2, 4}, {10, 1}, {0, 0}} {
		opts := DefaultOptions()
		opts.Length, opts.Width = dims[0], dims[1]
		_, err := New(testTrack(), opts)
		if !errors.Is(err, dynamo.ErrInvalidGrid) {
			t.Errorf("%v: expected ErrInvalidGrid, got %v", dims, err)
		}
	}
}

func TestRebuildIdempotent(t *testing.T) {
	b, err := New(testTrack(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Length = 100
	for k := 0; k < 2; k++ {
		if err := b.Rebuild(geom.Centered(3.0, 0.5, 1.2, 2.0), opts); err != nil {
			t.Fatal(err)
		}
		if len(b.Particles()) != 100*16 {
			t.Errorf("rebuild %d: %d particles", k, len(b.Particles()))
		}
		if len(b.Constraints()) != 100*16+100*15 {
			t.Errorf("rebuild %d: %d constraints", k, len(b.Constraints()))
		}
		if b.Mesh().VertexCount() != 100*16 {
			t.Errorf("rebuild %d: mesh has %d vertices", k, b.Mesh().VertexCount())
		}
	}

	bad := opts
	bad.Width = 1
	if err := b.Rebuild(testTrack(), bad); err == nil {
		t.Fatal("expected error")
	}
	if len(b.Particles()) != 100*16 {
		t.Error("failed rebuild modified the band")
	}
}

func TestRollerContactPins(t *testing.T) {
	p := DefaultPins()
	const L, W = 20, 8
	tests := []struct {
		i, j int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{1, 2, false},
		{1, 6, true},
		{1, 7, true},
		{9, 0, true},
		{10, 7, true},
		{11, 6, true},
		{12, 0, false},
		{10, 4, false},
	}
	for _, tt := range tests {
		if got := p.Pinned(tt.i, tt.j, L, W); got != tt.want {
			t.Errorf("Pinned(%d,%d) = %v, want %v", tt.i, tt.j, got, tt.want)
		}
	}
	if (NoPins{}).Pinned(0, 0, L, W) {
		t.Error("NoPins pinned a particle")
	}
}

func TestParticleIntegrate(t *testing.T) {
	p := NewParticle(r3.Vec{Y: 1}, false)
	p.Previous = r3.Vec{Y: 1.1}
	p.AddForce(r3.Vec{Y: -10})
	p.Integrate(0.1)

	// 1 + (1 - 1.1) + (-10)(0.01)
	if math.Abs(p.Position.Y-0.8) > 1e-12 {
		t.Errorf("position %.6f, want 0.8", p.Position.Y)
	}
	if p.Previous.Y != 1 {
		t.Errorf("previous %.6f, want 1", p.Previous.Y)
	}
	if p.Acceleration != (r3.Vec{}) {
		t.Error("acceleration not cleared")
	}

	f := NewParticle(r3.Vec{X: 3}, true)
	f.AddForce(r3.Vec{X: 100})
	f.Integrate(1)
	if f.Position != (r3.Vec{X: 3}) {
		t.Errorf("fixed particle moved to %v", f.Position)
	}
}

func TestConstraintSatisfy(t *testing.T) {
	ps := []Particle{
		NewParticle(r3.Vec{}, false),
		NewParticle(r3.Vec{X: 1}, false),
	}
	c := NewConstraint(ps, 0, 1, AlongBelt)
	ps[1].Position = r3.Vec{X: 3}

	c.Satisfy(ps, 1)
	if math.Abs(ps[0].Position.X-1) > 1e-12 || math.Abs(ps[1].Position.X-2) > 1e-12 {
		t.Errorf("got %v %v, want x=1 and x=2", ps[0].Position, ps[1].Position)
	}

	ps[0].Fixed = true
	ps[0].Position = r3.Vec{}
	ps[1].Position = r3.Vec{X: 2}
	c.Satisfy(ps, 1)
	if ps[0].Position != (r3.Vec{}) {
		t.Error("fixed endpoint moved")
	}
	if math.Abs(ps[1].Position.X-1.5) > 1e-12 {
		t.Errorf("free endpoint at %.4f, want 1.5", ps[1].Position.X)
	}

	ps[1].Position = ps[0].Position
	c.Satisfy(ps, 1)
	if ps[1].Position != ps[0].Position {
		t.Error("coincident endpoints were moved")
	}
}

func TestRelaxConverges(t *testing.T) {
	ps := []Particle{
		NewParticle(r3.Vec{}, true),
		NewParticle(r3.Vec{X: 1}, false),
		NewParticle(r3.Vec{X: 2}, true),
	}
	cs := []Constraint{
		NewConstraint(ps, 0, 1, AcrossWidth),
		NewConstraint(ps, 1, 2, AcrossWidth),
	}
	ps[1].Position = r3.Vec{X: 1, Y: -0.5}
	Relax(ps, cs, 50, 1)
	for _, c := range cs {
		if s := c.Strain(ps); s > 0.15 {
			t.Errorf("strain %.3f after relax", s)
		}
	}
}

func TestSteadyStateOnTrack(t *testing.T) {
	tr := testTrack()
	opts := DefaultOptions()
	opts.Length, opts.Width = 40, 5
	b, err := New(tr, opts)
	if err != nil {
		t.Fatal(err)
	}
	for f := 0; f < 30; f++ {
		b.Advance(1.0 / 60)
	}
	wantPhase := math.Mod(30*opts.LoopSpeed/60, 1)
	if math.Abs(b.Phase()-wantPhase) > 1e-12 {
		t.Errorf("phase %.6f, want %.6f", b.Phase(), wantPhase)
	}
	for i := 0; i < opts.Length; i++ {
		for j := 0; j < opts.Width; j++ {
			p := b.Particle(i, j)
			want := tr.Position(float64(i)/40+b.Phase(), float64(j)/4-0.5)
			if r3.Norm(r3.Sub(p.Position, want)) > 1e-9 {
				t.Fatalf("particle (%d,%d) off track: %v vs %v", i, j, p.Position, want)
			}
			if p.Position != p.Previous {
				t.Fatalf("particle (%d,%d) carries velocity", i, j)
			}
		}
	}
	if b.Strain() > 0.5 {
		t.Errorf("steady band strain %.3f", b.Strain())
	}
}

func TestPhaseWraps(t *testing.T) {
	opts := DefaultOptions()
	opts.Length, opts.Width = 10, 3
	opts.LoopSpeed = 0.7
	b, err := New(testTrack(), opts)
	if err != nil {
		t.Fatal(err)
	}
	for f := 0; f < 7; f++ {
		b.Advance(1)
		if b.Phase() < 0 || b.Phase() >= 1 {
			t.Fatalf("phase %.4f out of range", b.Phase())
		}
	}
}

func TestReset(t *testing.T) {
	for _, mode := range []Mode{SteadyState, Dynamic} {
		opts := DefaultOptions()
		opts.Length, opts.Width = 30, 6
		opts.Mode = mode
		b, err := New(testTrack(), opts)
		if err != nil {
			t.Fatal(err)
		}
		rest := make([]r3.Vec, len(b.Particles()))
		for k, p := range b.Particles() {
			rest[k] = p.Position
		}
		for f := 0; f < 20; f++ {
			b.Advance(1.0 / 30)
		}
		b.Reset()
		if b.Phase() != 0 || b.Time() != 0 {
			t.Errorf("%v: phase %.4f time %.4f after reset", mode, b.Phase(), b.Time())
		}
		for k, p := range b.Particles() {
			if p.Position != rest[k] || p.Previous != rest[k] || p.Rest != rest[k] {
				t.Fatalf("%v: particle %d not at rest", mode, k)
			}
		}
	}
}

func TestDynamicPinsFollowPath(t *testing.T) {
	tr := testTrack()
	opts := DefaultOptions()
	opts.Length, opts.Width = 40, 6
	opts.Mode = Dynamic
	b, err := New(tr, opts)
	if err != nil {
		t.Fatal(err)
	}
	if b.FixedCount() == 0 {
		t.Fatal("no pinned particles")
	}
	for f := 0; f < 10; f++ {
		b.Advance(1.0 / 60)
	}
	for k, p := range b.Particles() {
		i, j := k/opts.Width, k%opts.Width
		if !p.Fixed {
			continue
		}
		want := tr.Position(float64(i)/40+b.Phase(), float64(j)/5-0.5)
		if r3.Norm(r3.Sub(p.Position, want)) > 1e-9 {
			t.Errorf("pinned particle (%d,%d) left the path", i, j)
		}
	}

	sagged := false
	for _, p := range b.Particles() {
		if !p.Fixed && p.Position.Y < p.Rest.Y {
			sagged = true
			break
		}
	}
	if !sagged {
		t.Error("free particles did not respond to gravity")
	}
}

func TestTune(t *testing.T) {
	opts := DefaultOptions()
	opts.Length, opts.Width = 20, 6
	b, err := New(testTrack(), opts)
	if err != nil {
		t.Fatal(err)
	}
	pinned := b.FixedCount()

	tuned := opts
	tuned.Pins = NoPins{}
	tuned.Mode = Dynamic
	if err := b.Tune(tuned); err != nil {
		t.Fatal(err)
	}
	if b.FixedCount() != 0 || pinned == 0 {
		t.Errorf("fixed count %d -> %d", pinned, b.FixedCount())
	}
	if b.Options().Mode != Dynamic {
		t.Error("mode not applied")
	}

	tuned.Length = 30
	if err := b.Tune(tuned); !errors.Is(err, dynamo.ErrBufferMismatch) {
		t.Errorf("expected ErrBufferMismatch, got %v", err)
	}
}

func TestAdvancePanicsOnMeshMismatch(t *testing.T) {
	opts := DefaultOptions()
	opts.Length, opts.Width = 20, 4
	b, err := New(testTrack(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b.particles = b.particles[:len(b.particles)-1]

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, dynamo.ErrBufferMismatch) {
			t.Errorf("recovered %v, want ErrBufferMismatch", r)
		}
	}()
	b.Advance(1.0 / 60)
	t.Error("Advance did not panic")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"steady", SteadyState, false},
		{"", SteadyState, false},
		{"Dynamic", Dynamic, false},
		{"sag", SteadyState, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
