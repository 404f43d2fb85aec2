package playback

import (
	"math"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

// view maps world (x, z) onto screen pixels, looking down the y axis
type view struct {
	minX, minZ float64
	scale      float64
	offX, offY float64
	screenH    int
}

// fitView returns a view that fits every frame position on a w x h screen
// with margin pixels kept free on each side. Aspect ratio is preserved.
func fitView(frames []ghost.Frame, w, h, margin int) view {
	v := view{scale: 1, screenH: h}
	if len(frames) == 0 {
		return v
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, f := range frames {
		minX = math.Min(minX, f.Pos.X)
		maxX = math.Max(maxX, f.Pos.X)
		minZ = math.Min(minZ, f.Pos.Z)
		maxZ = math.Max(maxZ, f.Pos.Z)
	}

	availW := float64(w - 2*margin)
	availH := float64(h - 2*margin)
	spanX := maxX - minX
	spanZ := maxZ - minZ

	switch {
	case spanX == 0 && spanZ == 0:
		v.scale = 1
	case spanX == 0:
		v.scale = availH / spanZ
	case spanZ == 0:
		v.scale = availW / spanX
	default:
		v.scale = math.Min(availW/spanX, availH/spanZ)
	}

	v.minX, v.minZ = minX, minZ
	// center the path inside the margins
	v.offX = float64(margin) + (availW-spanX*v.scale)/2
	v.offY = float64(margin) + (availH-spanZ*v.scale)/2
	return v
}

// project returns the screen position of p. Larger z is drawn higher up.
func (v view) project(p ghost.Vector3) (float64, float64) {
	sx := v.offX + (p.X-v.minX)*v.scale
	sy := float64(v.screenH) - (v.offY + (p.Z-v.minZ)*v.scale)
	return sx, sy
}

// facingEnd returns the end of a heading line of length n pixels starting
// at (x, y). Facing angle is in degrees, 0 along +z, clockwise.
func facingEnd(x, y, degrees, n float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	return x + math.Sin(rad)*n, y - math.Cos(rad)*n
}
