package cloth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/seismograph/internal/cloth"
	"github.com/san-kum/seismograph/internal/geom"
)

var _ = Describe("Band", func() {
	var (
		track *geom.Track
		band  *cloth.Band
		opts  cloth.Options
	)

	BeforeEach(func() {
		track = geom.Centered(2.8, 0.35, 1.5, 2.0)
		opts = cloth.DefaultOptions()
		opts.Length, opts.Width = 24, 6

		var err error
		band, err = cloth.New(track, opts)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("mesh sync", func() {
		It("marks positions and normals dirty after every advance", func() {
			m := band.Mesh()
			m.ComputeNormals()
			m.MarkUploaded()
			Expect(m.PositionsDirty).To(BeFalse())
			Expect(m.NormalsDirty).To(BeFalse())

			band.Advance(1.0 / 60)
			Expect(m.PositionsDirty).To(BeTrue())
			Expect(m.NormalsDirty).To(BeTrue())
		})

		It("copies particles in row-major order", func() {
			band.Advance(0.5)
			m := band.Mesh()
			for k, p := range band.Particles() {
				v := m.Vertex(k)
				Expect(float64(v[0])).To(BeNumerically("~", p.Position.X, 1e-5))
				Expect(float64(v[1])).To(BeNumerically("~", p.Position.Y, 1e-5))
				Expect(float64(v[2])).To(BeNumerically("~", p.Position.Z, 1e-5))
			}
		})

		It("wraps the index buffer from the last row to the first", func() {
			idx := band.Mesh().Indices
			Expect(idx).To(HaveLen(6 * opts.Length * (opts.Width - 1)))

			lastRow := 6 * (opts.Length - 1) * (opts.Width - 1)
			Expect(idx[lastRow]).To(BeEquivalentTo((opts.Length - 1) * opts.Width))
			Expect(idx[lastRow+2]).To(BeEquivalentTo(0))
		})

		It("produces unit normals", func() {
			m := band.Mesh()
			m.ComputeNormals()
			for k := 0; k < m.VertexCount(); k++ {
				Expect(float64(m.Normal(k).Len())).To(BeNumerically("~", 1, 1e-4))
			}
		})
	})

	Describe("rebuild", func() {
		It("swaps in a new mesh", func() {
			old := band.Mesh()
			opts.Length = 40
			Expect(band.Rebuild(track, opts)).To(Succeed())
			Expect(band.Mesh()).NotTo(BeIdenticalTo(old))
			Expect(band.Particles()).To(HaveLen(40 * 6))
			Expect(band.Phase()).To(BeZero())
		})
	})

	Describe("dynamic mode", func() {
		BeforeEach(func() {
			opts.Mode = cloth.Dynamic
			Expect(band.Tune(opts)).To(Succeed())
		})

		It("stays finite while relaxing", func() {
			for f := 0; f < 120; f++ {
				band.Advance(1.0 / 60)
			}
			Expect(band.Strain()).To(BeNumerically(">", 0))
			Expect(band.Strain()).To(BeNumerically("<", 3.0))
		})

		It("returns to rest on reset", func() {
			for f := 0; f < 30; f++ {
				band.Advance(1.0 / 60)
			}
			band.Reset()
			for _, p := range band.Particles() {
				Expect(p.Position).To(Equal(p.Rest))
				Expect(p.Previous).To(Equal(p.Rest))
			}
			Expect(band.Time()).To(BeZero())
		})
	})
})
