package stats

import "github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"

// AirborneCollector tracks time spent off the ground.
//
// A takeoff is a grounded frame followed by one that is not grounded.
type AirborneCollector struct {
	started     bool
	wasGrounded bool
	takeoffs    int
	airTime     float64
	streak      float64
	longest     float64
}

// NewAirborneCollector creates an empty airborne collector
func NewAirborneCollector() *AirborneCollector {
	return &AirborneCollector{}
}

// Collect implements Collector
func (c *AirborneCollector) Collect(f ghost.Frame) {
	if c.started && c.wasGrounded && !f.Grounded {
		c.takeoffs++
	}
	c.started = true
	c.wasGrounded = f.Grounded

	if f.Grounded {
		c.streak = 0
		return
	}
	c.airTime += f.FrameTime
	c.streak += f.FrameTime
	if c.streak > c.longest {
		c.longest = c.streak
	}
}

// Takeoffs returns the number of grounded to airborne transitions
func (c *AirborneCollector) Takeoffs() int { return c.takeoffs }

// AirTime returns the total time spent not grounded
func (c *AirborneCollector) AirTime() float64 { return c.airTime }

// LongestAirTime returns the longest uninterrupted airborne stretch
func (c *AirborneCollector) LongestAirTime() float64 { return c.longest }

// Summary implements Collector
func (c *AirborneCollector) Summary() Summary {
	return Summary{
		Collector: "Airborne",
		Metrics: []Metric{
			{Name: "takeoffs", Value: float64(c.takeoffs)},
			{Name: "air time", Value: c.airTime, Unit: "s"},
			{Name: "longest air time", Value: c.longest, Unit: "s"},
		},
	}
}
