package stats

import "github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"

// buildFrames resolves frames from per-frame time and position deltas
func buildFrames(dts []float64, moves []ghost.Vector3) []ghost.Frame {
	frames := make([]ghost.Frame, 0, len(dts))
	var prev ghost.Frame
	for i, dt := range dts {
		f := ghost.NewFrame(i)
		f.CarryFrom(prev)
		f.FrameTime = dt
		if i < len(moves) {
			f.PosChange = moves[i]
		}
		f.Accumulate()
		frames = append(frames, f)
		prev = f
	}
	return frames
}

func metric(s Summary, name string) (float64, bool) {
	for _, m := range s.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}
