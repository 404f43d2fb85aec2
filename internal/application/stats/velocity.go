package stats

import "github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"

// VelocityCollector derives velocities from consecutive absolute positions.
//
// Lateral velocity is measured in the (x, z) plane, vertical velocity on y.
// Frames with a zero time delta only move the reference position.
type VelocityCollector struct {
	lastPos      ghost.Vector3
	lastVertical float64
	lastLateral  float64

	maxLateral float64
	maxUp      float64
	maxDown    float64
	maxAccel   float64
	jumps      int
}

// NewVelocityCollector creates an empty velocity collector
func NewVelocityCollector() *VelocityCollector {
	return &VelocityCollector{}
}

// Collect implements Collector
func (c *VelocityCollector) Collect(f ghost.Frame) {
	if f.Index != 0 && f.FrameTime != 0 {
		delta := f.Pos.Sub(c.lastPos)
		vertical := delta.Y / f.FrameTime
		lateral := delta.HorizontalLen() / f.FrameTime

		if lateral > c.maxLateral {
			c.maxLateral = lateral
		}
		if vertical > c.maxUp {
			c.maxUp = vertical
		}
		if vertical < c.maxDown {
			c.maxDown = vertical
		}
		// only speed gains count, braking is not acceleration here
		if accel := lateral - c.lastLateral; accel > c.maxAccel {
			c.maxAccel = accel
		}
		if c.lastVertical == 0 && vertical > 0 {
			c.jumps++
		}

		c.lastLateral = lateral
		c.lastVertical = vertical
	}
	c.lastPos = f.Pos
}

// Jumps returns the number of rises from zero vertical velocity
func (c *VelocityCollector) Jumps() int { return c.jumps }

// MaxLateral returns the highest lateral velocity
func (c *VelocityCollector) MaxLateral() float64 { return c.maxLateral }

// MaxUp returns the highest upward velocity
func (c *VelocityCollector) MaxUp() float64 { return c.maxUp }

// MaxDown returns the most negative vertical velocity
func (c *VelocityCollector) MaxDown() float64 { return c.maxDown }

// MaxAcceleration returns the largest single-frame gain in lateral velocity
func (c *VelocityCollector) MaxAcceleration() float64 { return c.maxAccel }

// Summary implements Collector
func (c *VelocityCollector) Summary() Summary {
	return Summary{
		Collector: "Velocity",
		Metrics: []Metric{
			{Name: "jumps", Value: float64(c.jumps)},
			{Name: "max lateral acceleration", Value: c.maxAccel, Unit: "u/s per frame"},
			{Name: "max lateral velocity", Value: c.maxLateral, Unit: "u/s"},
			{Name: "max upward velocity", Value: c.maxUp, Unit: "u/s"},
			{Name: "max downward velocity", Value: c.maxDown, Unit: "u/s"},
		},
	}
}
