package stats

import "github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"

// FrameTimeCollector tracks the distribution of per-frame time deltas.
//
// Frame 0 is the bootstrap frame and never contributes; neither does any
// frame with a zero delta.
type FrameTimeCollector struct {
	cumulative float64
	count      int
	sum        float64
	min        float64
	max        float64
}

// NewFrameTimeCollector creates an empty frame time collector
func NewFrameTimeCollector() *FrameTimeCollector {
	return &FrameTimeCollector{}
}

// Collect implements Collector
func (c *FrameTimeCollector) Collect(f ghost.Frame) {
	c.cumulative = f.CumulativeTime
	if f.Index == 0 || f.FrameTime == 0 {
		return
	}

	c.count++
	c.sum += f.FrameTime
	// min is seeded by the first contributing frame so 0 never shows up as a minimum
	if c.count == 1 {
		c.min = f.FrameTime
		c.max = f.FrameTime
		return
	}
	if f.FrameTime < c.min {
		c.min = f.FrameTime
	}
	if f.FrameTime > c.max {
		c.max = f.FrameTime
	}
}

// Count returns the number of contributing frames
func (c *FrameTimeCollector) Count() int { return c.count }

// Sum returns the summed frame time of contributing frames
func (c *FrameTimeCollector) Sum() float64 { return c.sum }

// Min returns the smallest nonzero frame time
func (c *FrameTimeCollector) Min() float64 { return c.min }

// Max returns the largest frame time
func (c *FrameTimeCollector) Max() float64 { return c.max }

// CumulativeTime returns the playback time at the last frame seen
func (c *FrameTimeCollector) CumulativeTime() float64 { return c.cumulative }

// Average returns Sum / Count, or 0 when nothing contributed
func (c *FrameTimeCollector) Average() float64 {
	if c.count == 0 {
		return 0
	}
	return c.sum / float64(c.count)
}

// Summary implements Collector
func (c *FrameTimeCollector) Summary() Summary {
	return Summary{
		Collector: "Frame time",
		Metrics: []Metric{
			{Name: "cumulative time", Value: c.cumulative, Unit: "s"},
			{Name: "frames", Value: float64(c.count)},
			{Name: "min frame time", Value: c.min, Unit: "s"},
			{Name: "avg frame time", Value: c.Average(), Unit: "s"},
			{Name: "max frame time", Value: c.max, Unit: "s"},
		},
	}
}
