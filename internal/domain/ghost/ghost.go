// Package ghost defines the decoded form of a recorded level run.
package ghost

import "fmt"

// NominalFrameTime is the tick length the recorder writes in every header
const NominalFrameTime = "0.03333"

// expectedFrames pre-sizes the frame slice for a typical run
const expectedFrames = 4096

// Ghost is a decoded recording: header metadata plus frames in playback order
type Ghost struct {
	LevelName     string
	ForcedGhostID int64
	// TotalTime is the duration declared by the header. It is kept apart
	// from the sum of frame times; the two are not required to agree.
	TotalTime float64
	Frames    []Frame
}

// New creates an empty ghost
func New() *Ghost {
	return &Ghost{
		ForcedGhostID: -1,
		TotalTime:     -1,
		Frames:        make([]Frame, 0, expectedFrames),
	}
}

// Append adds the next frame. Frames must arrive in index order.
func (g *Ghost) Append(f Frame) error {
	if f.Index != len(g.Frames) {
		return fmt.Errorf("frame index %d out of order, expected %d", f.Index, len(g.Frames))
	}
	g.Frames = append(g.Frames, f)
	return nil
}

// Len returns the number of frames
func (g *Ghost) Len() int {
	return len(g.Frames)
}

// Last returns the final frame, if any
func (g *Ghost) Last() (Frame, bool) {
	if len(g.Frames) == 0 {
		return Frame{}, false
	}
	return g.Frames[len(g.Frames)-1], true
}

// FrameTimeSum returns the playback time reached by the last frame
func (g *Ghost) FrameTimeSum() float64 {
	last, ok := g.Last()
	if !ok {
		return 0
	}
	return last.CumulativeTime
}
