package stats

import (
	"testing"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

// benchFrames is roughly five minutes of recording at 30 fps
var benchFrames = func() []ghost.Frame {
	const n = 10_000
	dts := make([]float64, n)
	moves := make([]ghost.Vector3, n)
	for i := range dts {
		dts[i] = 0.0333
		moves[i] = ghost.Vector3{X: 0.3, Y: float64(i%7) - 3, Z: 0.2}
	}
	frames := buildFrames(dts, moves)
	for i := range frames {
		switch i % 50 {
		case 10:
			frames[i].Event = ghost.JumpEvent{}
		case 20:
			frames[i].Event = ghost.BulletEvent{Type: ghost.BulletRocket}
		case 30:
			frames[i].Event = ghost.DiscardEvent{Ability: ghost.DiscardDash}
		case 40:
			frames[i].Event = ghost.LandEvent{}
			frames[i].Grounded = true
		}
	}
	return frames
}()

// All collectors fed frame by frame in one pass
func BenchmarkRun_SinglePass(b *testing.B) {
	for n := 0; n < b.N; n++ {
		Run(benchFrames, Default()...)
	}
}

// One full pass over the frames per collector
func BenchmarkRun_PassPerCollector(b *testing.B) {
	for n := 0; n < b.N; n++ {
		for _, c := range Default() {
			for _, f := range benchFrames {
				c.Collect(f)
			}
			c.Summary()
		}
	}
}

func BenchmarkFrameTimeCollector(b *testing.B) {
	for n := 0; n < b.N; n++ {
		Run(benchFrames, NewFrameTimeCollector())
	}
}

func BenchmarkVelocityCollector(b *testing.B) {
	for n := 0; n < b.N; n++ {
		Run(benchFrames, NewVelocityCollector())
	}
}
