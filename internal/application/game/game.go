// Package game provides the ebiten loop that drives viewer scenes.
package game

import (
	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/scene"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   int
}

// New creates a Game running initialScene at tps updates per second.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.ticks++
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the viewer's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the wall time passed to scenes per update
func (g *Game) DT() float64 {
	return g.dt
}

// Ticks returns the number of updates run so far
func (g *Game) Ticks() int {
	return g.ticks
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
