package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/seismograph/internal/cloth"
	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/sim"
	"github.com/san-kum/seismograph/internal/signal"
	"github.com/san-kum/seismograph/internal/trace"
)

var _ = Describe("Driver", func() {
	var (
		cfg    *config.Config
		driver *sim.Driver
		frames []dynamo.FrameStats
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Conveyor.BandLength = 60
		cfg.Conveyor.WidthSegments = 8
		frames = nil

		var err error
		driver, err = sim.New(cfg,
			sim.WithSource(signal.NewSource(3)),
			sim.WithObserver(dynamo.ObserverFunc(func(s dynamo.FrameStats) {
				frames = append(frames, s)
			})),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("notifies observers once per frame in order", func() {
		for i := 0; i < 5; i++ {
			driver.Advance(1.0 / 60)
		}
		Expect(frames).To(HaveLen(5))
		for i, f := range frames {
			Expect(f.Frame).To(Equal(i + 1))
		}
	})

	It("keeps the mesh in step with the band", func() {
		driver.Advance(0.25)
		mesh := driver.Band().Mesh()
		Expect(mesh.PositionsDirty).To(BeTrue())
		p := driver.Band().Particle(10, 3)
		v := mesh.Vertex(10*8 + 3)
		Expect(float64(v[2])).To(BeNumerically("~", p.Position.Z, 1e-5))
	})

	It("scrolls the drum in proportion to rotation speed", func() {
		Expect(driver.Update(func(c *config.Config) { c.Drum.RotationSpeed = 1 })).To(Succeed())
		total := 0
		for i := 0; i < 60; i++ {
			total += driver.Step(1.0 / 60).DrumShift
		}
		// one radian turns W/(2*pi) columns
		Expect(total).To(BeNumerically("~", trace.DrumWidth/(2*3.141592653589793), 1))
	})

	Context("when the grid is toggled", func() {
		It("updates the drum without a rebuild", func() {
			mesh := driver.Band().Mesh()
			Expect(driver.ToggleGrid()).To(Succeed())
			Expect(driver.Drum().Grid()).To(BeFalse())
			Expect(driver.Band().Mesh()).To(BeIdenticalTo(mesh))
		})
	})

	Context("in dynamic mode", func() {
		BeforeEach(func() {
			Expect(driver.ToggleMode()).To(Succeed())
		})

		It("switches the band solver", func() {
			Expect(driver.Band().Options().Mode).To(Equal(cloth.Dynamic))
		})

		It("reports strain", func() {
			var last dynamo.FrameStats
			for i := 0; i < 30; i++ {
				last = driver.Step(1.0 / 60)
			}
			Expect(last.Strain).To(BeNumerically(">", 0))
		})
	})

	Context("when the band is resized", func() {
		It("rebuilds with the new grid", func() {
			Expect(driver.Nudge("band_length", 2)).To(Succeed())
			Expect(driver.Band().Particles()).To(HaveLen(80 * 8))
			Expect(driver.Band().Mesh().VertexCount()).To(Equal(80 * 8))
		})
	})
})
