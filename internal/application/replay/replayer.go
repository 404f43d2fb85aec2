package replay

import (
	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

// Cursor plays a decoded ghost back against a wall clock.
//
// Advance moves the clock forward and returns the last frame whose
// cumulative time has been reached.
type Cursor struct {
	frames []ghost.Frame
	frame  int
	clock  float64
	speed  float64
}

// NewCursor creates a cursor positioned on the first frame
func NewCursor(g *ghost.Ghost) *Cursor {
	return &Cursor{
		frames: g.Frames,
		frame:  0,
		speed:  1,
	}
}

// Advance moves playback forward by dt seconds (scaled by speed) and
// returns the current frame. ok is false when there are no frames.
func (c *Cursor) Advance(dt float64) (ghost.Frame, bool) {
	if len(c.frames) == 0 {
		return ghost.Frame{}, false
	}

	c.clock += dt * c.speed
	for c.frame+1 < len(c.frames) && c.frames[c.frame+1].CumulativeTime <= c.clock {
		c.frame++
	}
	return c.frames[c.frame], true
}

// Current returns the current frame without advancing
func (c *Cursor) Current() (ghost.Frame, bool) {
	if len(c.frames) == 0 {
		return ghost.Frame{}, false
	}
	return c.frames[c.frame], true
}

// Frames returns the frames being played
func (c *Cursor) Frames() []ghost.Frame {
	return c.frames
}

// CurrentFrame returns the current frame number
func (c *Cursor) CurrentFrame() int {
	return c.frame
}

// TotalFrames returns the total number of frames
func (c *Cursor) TotalFrames() int {
	return len(c.frames)
}

// Clock returns the playback time in seconds
func (c *Cursor) Clock() float64 {
	return c.clock
}

// Done reports whether the last frame has been reached
func (c *Cursor) Done() bool {
	return len(c.frames) == 0 || c.frame == len(c.frames)-1
}

// Speed returns the playback speed multiplier
func (c *Cursor) Speed() float64 {
	return c.speed
}

// SetSpeed sets the playback speed multiplier. Non-positive values are ignored.
func (c *Cursor) SetSpeed(speed float64) {
	if speed > 0 {
		c.speed = speed
	}
}

// Seek jumps to frame index, clamped to the valid range
func (c *Cursor) Seek(index int) {
	if len(c.frames) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(c.frames) {
		index = len(c.frames) - 1
	}
	c.frame = index
	c.clock = c.frames[index].CumulativeTime
}

// Reset resets the cursor to the beginning
func (c *Cursor) Reset() {
	c.frame = 0
	c.clock = 0
}
