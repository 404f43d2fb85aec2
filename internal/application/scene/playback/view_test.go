package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

func framesAt(points ...ghost.Vector3) []ghost.Frame {
	frames := make([]ghost.Frame, len(points))
	for i, p := range points {
		frames[i] = ghost.NewFrame(i)
		frames[i].Pos = p
	}
	return frames
}

func TestFitView_FitsBounds(t *testing.T) {
	frames := framesAt(
		ghost.Vector3{X: -10, Y: 5, Z: 0},
		ghost.Vector3{X: 10, Y: -5, Z: 10},
	)
	v := fitView(frames, 240, 140, 20)

	// 200x100 available for a 20x10 span: scale 10 both ways
	assert.Equal(t, 10.0, v.scale)

	x, y := v.project(ghost.Vector3{X: -10, Z: 0})
	assert.InDelta(t, 20.0, x, 1e-9)
	assert.InDelta(t, 120.0, y, 1e-9, "lowest z sits on the bottom margin")

	x, y = v.project(ghost.Vector3{X: 10, Z: 10})
	assert.InDelta(t, 220.0, x, 1e-9)
	assert.InDelta(t, 20.0, y, 1e-9)
}

func TestFitView_PreservesAspect(t *testing.T) {
	frames := framesAt(ghost.Vector3{X: 0, Z: 0}, ghost.Vector3{X: 10, Z: 10})
	v := fitView(frames, 400, 200, 0)

	assert.Equal(t, 20.0, v.scale)
	x, _ := v.project(ghost.Vector3{X: 0})
	assert.InDelta(t, 100.0, x, 1e-9, "narrow axis is centered")
}

func TestFitView_Degenerate(t *testing.T) {
	v := fitView(nil, 100, 100, 10)
	assert.Equal(t, 1.0, v.scale)

	v = fitView(framesAt(ghost.Vector3{X: 3, Z: 3}), 100, 100, 10)
	x, y := v.project(ghost.Vector3{X: 3, Z: 3})
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)

	v = fitView(framesAt(ghost.Vector3{X: 0}, ghost.Vector3{X: 8}), 100, 100, 10)
	assert.Equal(t, 10.0, v.scale)
}

func TestFacingEnd(t *testing.T) {
	x, y := facingEnd(50, 50, 0, 10)
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 40.0, y, 1e-9)

	x, y = facingEnd(50, 50, 90, 10)
	assert.InDelta(t, 60.0, x, 1e-9)
	assert.InDelta(t, 50.0, y, 1e-9)
}
