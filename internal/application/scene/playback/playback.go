// Package playback provides the ghost playback scene.
package playback

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/replay"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/scene"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/state"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorPath      = color.RGBA{80, 80, 100, 255}
	colorTrail     = color.RGBA{100, 200, 100, 255}
	colorMarker    = color.RGBA{255, 215, 0, 255}
	colorFacing    = color.RGBA{255, 255, 255, 200}
	colorJump      = color.RGBA{100, 100, 200, 255}
	colorBullet    = color.RGBA{255, 200, 100, 255}
	colorBulletHit = color.RGBA{200, 50, 50, 255}
	colorDiscard   = color.RGBA{200, 100, 200, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 150}
)

const (
	seekFrames   = 60
	minSpeed     = 0.125
	maxSpeed     = 16
	facingLength = 12
	markerSize   = 5.0
)

// Controls is the input read once per update
type Controls struct {
	TogglePause bool
	Restart     bool
	Faster      bool
	Slower      bool
	SeekBack    bool
	SeekForward bool
	Quit        bool
}

// ReadKeyboard reads Controls from the keyboard
func ReadKeyboard() Controls {
	return Controls{
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		Faster:      inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd),
		Slower:      inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract),
		SeekBack:    inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		SeekForward: inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Playback draws a ghost from above and plays it back in real time
type Playback struct {
	ghost   *ghost.Ghost
	cursor  *replay.Cursor
	state   state.PlaybackState
	view    view
	screenW int
	screenH int
	trail   int

	// input is swapped out in tests
	input func() Controls
}

// New creates a playback scene for g
func New(g *ghost.Ghost, cfg config.ViewerConfig) *Playback {
	cursor := replay.NewCursor(g)
	cursor.SetSpeed(cfg.Speed)

	return &Playback{
		ghost:   g,
		cursor:  cursor,
		state:   state.StateLoading,
		view:    fitView(g.Frames, cfg.ScreenWidth, cfg.ScreenHeight, cfg.Margin),
		screenW: cfg.ScreenWidth,
		screenH: cfg.ScreenHeight,
		trail:   cfg.Trail,
		input:   ReadKeyboard,
	}
}

// State returns the playback state
func (p *Playback) State() state.PlaybackState {
	return p.state
}

// Cursor returns the playback cursor
func (p *Playback) Cursor() *replay.Cursor {
	return p.cursor
}

// Update implements scene.Scene
func (p *Playback) Update(dt float64) (scene.Scene, error) {
	in := p.input()
	if in.Quit {
		return nil, ebiten.Termination
	}

	if in.Restart {
		p.cursor.Reset()
		p.state = state.StatePlaying
	}
	if in.Faster {
		p.cursor.SetSpeed(min(p.cursor.Speed()*2, maxSpeed))
	}
	if in.Slower {
		p.cursor.SetSpeed(max(p.cursor.Speed()/2, minSpeed))
	}
	if in.SeekBack {
		p.cursor.Seek(p.cursor.CurrentFrame() - seekFrames)
		if p.state == state.StateFinished {
			p.state = state.StatePaused
		}
	}
	if in.SeekForward {
		p.cursor.Seek(p.cursor.CurrentFrame() + seekFrames)
	}

	switch p.state {
	case state.StateLoading:
		p.state = state.StatePlaying
	case state.StatePlaying:
		if in.TogglePause {
			p.state = state.StatePaused
			return nil, nil
		}
		p.cursor.Advance(dt)
		if p.cursor.Done() {
			p.state = state.StateFinished
		}
	case state.StatePaused:
		if in.TogglePause {
			p.state = state.StatePlaying
		}
	case state.StateFinished:
		if in.TogglePause {
			p.cursor.Reset()
			p.state = state.StatePlaying
		}
	}

	return nil, nil
}

// Draw implements scene.Scene
func (p *Playback) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	frames := p.cursor.Frames()
	if len(frames) == 0 {
		ebitenutil.DebugPrint(screen, "empty ghost")
		return
	}

	p.drawPath(screen, frames)
	p.drawEvents(screen, frames)
	p.drawMarker(screen)
	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED - SPACE to resume")
	case state.StateFinished:
		p.drawOverlay(screen, "FINISHED - SPACE to replay")
	}
}

func (p *Playback) drawPath(screen *ebiten.Image, frames []ghost.Frame) {
	cur := p.cursor.CurrentFrame()
	trailStart := 0
	if p.trail > 0 && cur-p.trail > 0 {
		trailStart = cur - p.trail
	}

	for i := 1; i < len(frames); i++ {
		x0, y0 := p.view.project(frames[i-1].Pos)
		x1, y1 := p.view.project(frames[i].Pos)
		c := colorPath
		if i <= cur && i > trailStart {
			c = colorTrail
		}
		ebitenutil.DrawLine(screen, x0, y0, x1, y1, c)
	}
}

func (p *Playback) drawEvents(screen *ebiten.Image, frames []ghost.Frame) {
	for _, f := range frames[:p.cursor.CurrentFrame()+1] {
		c, ok := eventColor(f.Event)
		if !ok {
			continue
		}
		x, y := p.view.project(f.Pos)
		ebitenutil.DrawRect(screen, x-1.5, y-1.5, 3, 3, c)
		if _, hit := f.Event.(ghost.BulletHitEvent); hit {
			hx, hy := p.view.project(f.BulletHitPos)
			ebitenutil.DrawLine(screen, x, y, hx, hy, c)
		}
	}
}

func (p *Playback) drawMarker(screen *ebiten.Image) {
	f, ok := p.cursor.Current()
	if !ok {
		return
	}
	x, y := p.view.project(f.Pos)
	ebitenutil.DrawRect(screen, x-markerSize/2, y-markerSize/2, markerSize, markerSize, colorMarker)
	fx, fy := facingEnd(x, y, f.FacingAngle, facingLength)
	ebitenutil.DrawLine(screen, x, y, fx, fy, colorFacing)
}

func (p *Playback) drawHUD(screen *ebiten.Image) {
	f, _ := p.cursor.Current()
	text := fmt.Sprintf("%s  %s\nt=%.3fs / %.3fs  frame %d/%d  x%.3g\npos %.2f %.2f %.2f  facing %.1f  pitch %.1f\n%s%s",
		p.ghost.LevelName, p.state,
		f.CumulativeTime, p.ghost.TotalTime, p.cursor.CurrentFrame(), p.cursor.TotalFrames()-1, p.cursor.Speed(),
		f.Pos.X, f.Pos.Y, f.Pos.Z, f.FacingAngle, f.CameraPitch,
		flagText(f), eventText(f.Event),
	)
	ebitenutil.DebugPrint(screen, text)
	ebitenutil.DebugPrintAt(screen, "SPACE pause  R restart  +/- speed  </> seek  ESC quit", 10, p.screenH-20)
}

func (p *Playback) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, float64(p.screenH/2-20), float64(p.screenW), 30, colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-len(text)*3, p.screenH/2-12)
}

// OnEnter implements scene.Scene
func (p *Playback) OnEnter() {
	p.cursor.Reset()
	p.state = state.StateLoading
}

// OnExit implements scene.Scene
func (p *Playback) OnExit() {}

func flagText(f ghost.Frame) string {
	s := ""
	if f.Grounded {
		s += "[grounded] "
	}
	if f.Stomping {
		s += "[stomp] "
	}
	if f.Ziplining {
		s += "[zipline] "
	}
	if f.PlayShotAnimation {
		s += "[shot] "
	}
	return s
}

func eventText(ev ghost.TriggerEvent) string {
	if ev == nil {
		return ""
	}
	if _, none := ev.(ghost.NoEvent); none {
		return ""
	}
	return ev.String()
}

// eventColor picks the marker color of an event. ok is false for frames without one.
func eventColor(ev ghost.TriggerEvent) (color.RGBA, bool) {
	switch ev.(type) {
	case nil, ghost.NoEvent, ghost.LandEvent:
		return color.RGBA{}, false
	case ghost.JumpEvent:
		return colorJump, true
	case ghost.BulletEvent:
		return colorBullet, true
	case ghost.DiscardEvent:
		return colorDiscard, true
	case ghost.BulletHitEvent:
		return colorBulletHit, true
	default:
		panic(fmt.Sprintf("playback: unhandled trigger event %T", ev))
	}
}
