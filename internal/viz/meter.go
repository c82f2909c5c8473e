package viz

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Meter is a needle level that chases the signal on a damped spring, so
// spikes read as a swing rather than a flicker.
type Meter struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	peak   float64
}

func NewMeter(fps int, frequency, damping float64) *Meter {
	return &Meter{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Step moves the needle one frame towards |target|.
func (m *Meter) Step(target float64) float64 {
	target = math.Abs(target)
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, target)
	if m.pos > m.peak {
		m.peak = m.pos
	}
	return m.pos
}

func (m *Meter) Value() float64 { return m.pos }
func (m *Meter) Peak() float64  { return m.peak }

func (m *Meter) Reset() {
	m.pos, m.vel, m.peak = 0, 0, 0
}
