package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/seismograph/internal/geom"
)

func vec3(x, y, z float64) rl.Vector3 {
	return rl.NewVector3(float32(x), float32(y), float32(z))
}

// drawRollers draws the recording drum wrapped in the drum paper on the
// left axis and a plain take-up roller on the right, both spinning with the
// drum angle.
func (a *App) drawRollers() {
	tr := a.Driver.Track()
	half := tr.BandWidth/2 + rollerOverhang
	angle := a.Driver.DrumAngle()

	a.texturedCylinder(tr.LeftZ, tr.CenterY, tr.Radius, -half, half, angle)

	start := vec3(-half, tr.CenterY, tr.RightZ)
	end := vec3(half, tr.CenterY, tr.RightZ)
	rl.DrawCylinderEx(start, end, float32(tr.Radius), float32(tr.Radius), rollerSides, ColRoller)
	// spoke marks make the take-up spin visible
	for k := 0; k < 4; k++ {
		th := angle + float64(k)*math.Pi/2
		y := tr.CenterY + tr.Radius*math.Cos(th)
		z := tr.RightZ - tr.Radius*math.Sin(th)
		rl.DrawLine3D(vec3(half+0.001, tr.CenterY, tr.RightZ), vec3(half+0.001, y, z), ColTextDim)
	}

	base := tr.Straight() + 2*tr.Radius + 1
	rl.DrawCube(vec3(0, tr.BottomY()-0.6, (tr.LeftZ+tr.RightZ)/2), float32(tr.BandWidth+1), 0.1, float32(base), ColBase)
}

// texturedCylinder draws a cylinder along X with the drum texture wrapped
// once around it, rotated by angle.
func (a *App) texturedCylinder(cz, cy, r, x0, x1, angle float64) {
	rl.SetTexture(a.drumTex.ID)
	rl.Begin(rl.Quads)
	rl.Color4ub(255, 255, 255, 255)
	for k := 0; k < rollerSides; k++ {
		u0 := float64(k) / rollerSides
		u1 := float64(k+1) / rollerSides
		a0 := 2*math.Pi*u0 + angle
		a1 := 2*math.Pi*u1 + angle
		c0, s0 := math.Cos(a0), math.Sin(a0)
		c1, s1 := math.Cos(a1), math.Sin(a1)

		rl.Normal3f(0, float32(c0), float32(-s0))
		rl.TexCoord2f(float32(u0), 0)
		rl.Vertex3f(float32(x0), float32(cy+r*c0), float32(cz-r*s0))
		rl.TexCoord2f(float32(u0), 1)
		rl.Vertex3f(float32(x1), float32(cy+r*c0), float32(cz-r*s0))
		rl.Normal3f(0, float32(c1), float32(-s1))
		rl.TexCoord2f(float32(u1), 1)
		rl.Vertex3f(float32(x1), float32(cy+r*c1), float32(cz-r*s1))
		rl.TexCoord2f(float32(u1), 0)
		rl.Vertex3f(float32(x0), float32(cy+r*c1), float32(cz-r*s1))
	}
	rl.End()
	rl.SetTexture(0)
}

// drawBand draws the band mesh textured with the belt paper, sliding the
// texture by the belt scroll, plus a plain underside pushed inwards by the
// paper thickness.
func (a *App) drawBand() {
	mesh := a.Driver.Band().Mesh()
	if mesh.NormalsDirty {
		mesh.ComputeNormals()
	}
	L, W := mesh.Length, mesh.Width
	off := float32(a.Driver.Belt().Offset())
	thick := float32(a.Driver.Config().Paper.Thickness)

	rl.DisableBackfaceCulling()
	rl.SetTexture(a.beltTex.ID)
	rl.Begin(rl.Triangles)
	rl.Color4ub(255, 255, 255, 255)
	for i := 0; i < L; i++ {
		next := (i + 1) % L
		u0 := float32(i)/float32(L) + off
		u1 := float32(i+1)/float32(L) + off
		for j := 0; j < W-1; j++ {
			v0 := float32(j) / float32(W-1)
			v1 := float32(j+1) / float32(W-1)
			k00, k01 := i*W+j, i*W+j+1
			k10, k11 := next*W+j, next*W+j+1
			bandVertex(mesh.Vertex(k00), mesh.Normal(k00), u0, v0, 0)
			bandVertex(mesh.Vertex(k01), mesh.Normal(k01), u0, v1, 0)
			bandVertex(mesh.Vertex(k10), mesh.Normal(k10), u1, v0, 0)
			bandVertex(mesh.Vertex(k01), mesh.Normal(k01), u0, v1, 0)
			bandVertex(mesh.Vertex(k11), mesh.Normal(k11), u1, v1, 0)
			bandVertex(mesh.Vertex(k10), mesh.Normal(k10), u1, v0, 0)
		}
	}
	rl.End()
	rl.SetTexture(0)

	rl.Begin(rl.Triangles)
	rl.Color4ub(ColUnder.R, ColUnder.G, ColUnder.B, ColUnder.A)
	for t := 0; t+2 < len(mesh.Indices); t += 3 {
		for _, k := range [3]uint32{mesh.Indices[t], mesh.Indices[t+2], mesh.Indices[t+1]} {
			p, n := mesh.Vertex(int(k)), mesh.Normal(int(k))
			rl.Normal3f(-n[0], -n[1], -n[2])
			rl.Vertex3f(p[0]-n[0]*thick, p[1]-n[1]*thick, p[2]-n[2]*thick)
		}
	}
	rl.End()
	rl.EnableBackfaceCulling()
	mesh.MarkUploaded()
}

func bandVertex(p, n [3]float32, u, v, lift float32) {
	rl.Normal3f(n[0], n[1], n[2])
	rl.TexCoord2f(u, v)
	rl.Vertex3f(p[0]+n[0]*lift, p[1]+n[1]*lift, p[2]+n[2]*lift)
}

// drawTraceLine draws the sample polyline just above the top straight.
func (a *App) drawTraceLine() {
	cfg := a.Driver.Config()
	if !cfg.Sim.TraceRunning {
		return
	}
	lift := cfg.Paper.Thickness + 0.01
	vs := a.Driver.Line().Vertices(a.Driver.Track())
	for i := 1; i < len(vs); i++ {
		p, q := vs[i-1], vs[i]
		rl.DrawLine3D(vec3(p.X, p.Y+lift, p.Z), vec3(q.X, q.Y+lift, q.Z), ColTrace)
	}
}

func (a *App) drawDecor() {
	tr := a.Driver.Track()
	for _, d := range a.decor {
		rl.DrawModel(d.Model, decorPosition(d.Name, tr), 1, rl.White)
	}
}

// decorPosition places the needle over the drum and the collection box just
// past the take-up roller.
func decorPosition(name string, tr *geom.Track) rl.Vector3 {
	switch name {
	case "needle":
		return vec3(0, tr.TopY()+0.4, tr.LeftZ+tr.Radius*0.5)
	case "collection_box":
		return vec3(0, 0, tr.RightZ+tr.Radius+0.45)
	}
	return vec3(0, 0, 0)
}
