package cloth

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/san-kum/seismograph/internal/dynamo"
)

// Mesh is the band's vertex buffer in upload order. Vertex k = i*Width + j.
type Mesh struct {
	Length, Width int

	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32

	PositionsDirty bool
	NormalsDirty   bool
}

// NewMesh builds the index and UV buffers for a length x width grid. Quads
// wrap along the belt so the last row joins the first.
func NewMesh(length, width int) *Mesh {
	n := length * width
	m := &Mesh{
		Length:    length,
		Width:     width,
		Positions: make([]float32, 3*n),
		Normals:   make([]float32, 3*n),
		UVs:       make([]float32, 2*n),
		Indices:   make([]uint32, 0, 6*length*(width-1)),
	}
	for i := 0; i < length; i++ {
		for j := 0; j < width; j++ {
			k := i*width + j
			m.UVs[2*k] = float32(i) / float32(length)
			m.UVs[2*k+1] = float32(j) / float32(width-1)
		}
	}
	for i := 0; i < length; i++ {
		next := (i + 1) % length
		for j := 0; j < width-1; j++ {
			i0 := uint32(i*width + j)
			i1 := uint32(i*width + j + 1)
			i2 := uint32(next*width + j)
			i3 := uint32(next*width + j + 1)
			m.Indices = append(m.Indices, i0, i1, i2, i1, i3, i2)
		}
	}
	return m
}

func (m *Mesh) VertexCount() int { return m.Length * m.Width }

// Sync copies particle positions into the vertex buffer and marks positions
// and normals dirty.
func (m *Mesh) Sync(ps []Particle) error {
	if len(ps) != m.VertexCount() {
		return fmt.Errorf("mesh %dx%d, %d particles: %w", m.Length, m.Width, len(ps), dynamo.ErrBufferMismatch)
	}
	for k, p := range ps {
		m.Positions[3*k] = float32(p.Position.X)
		m.Positions[3*k+1] = float32(p.Position.Y)
		m.Positions[3*k+2] = float32(p.Position.Z)
	}
	m.PositionsDirty = true
	m.NormalsDirty = true
	return nil
}

func (m *Mesh) Vertex(k int) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[3*k], m.Positions[3*k+1], m.Positions[3*k+2]}
}

func (m *Mesh) Normal(k int) mgl32.Vec3 {
	return mgl32.Vec3{m.Normals[3*k], m.Normals[3*k+1], m.Normals[3*k+2]}
}

// ComputeNormals rebuilds per-vertex normals as the area-weighted sum of the
// adjacent face normals.
func (m *Mesh) ComputeNormals() {
	acc := make([]mgl32.Vec3, m.VertexCount())
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		va, vb, vc := m.Vertex(int(a)), m.Vertex(int(b)), m.Vertex(int(c))
		face := vb.Sub(va).Cross(vc.Sub(va))
		acc[a] = acc[a].Add(face)
		acc[b] = acc[b].Add(face)
		acc[c] = acc[c].Add(face)
	}
	for k, n := range acc {
		if n.Len() > 0 {
			n = n.Normalize()
		}
		m.Normals[3*k] = n[0]
		m.Normals[3*k+1] = n[1]
		m.Normals[3*k+2] = n[2]
	}
	m.NormalsDirty = false
}

// MarkUploaded clears the position flag once a renderer has consumed it.
func (m *Mesh) MarkUploaded() {
	m.PositionsDirty = false
}
