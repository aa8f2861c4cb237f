//go:build window

// Package window runs a game in a desktop window with ebiten. The window
// shows the whole field scaled to fit; held keys are read directly, so no
// hold emulation is needed.
package window

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/game"
	"github.com/vovakirdan/bubble-dodge/internal/registry"
)

// keyBindings lists the keys held for each movement action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ},
}

// Backend runs games in a desktop window.
type Backend struct{}

// ID returns "window".
func (Backend) ID() string {
	return "window"
}

// Title returns the display name.
func (Backend) Title() string {
	return "Desktop window (ebiten)"
}

// Run opens the window and plays until it is closed, the player quits or
// ctx is cancelled.
func (Backend) Run(ctx context.Context, s registry.Session) error {
	canvas, err := NewImageCanvas(s.Assets)
	if err != nil {
		return fmt.Errorf("window: font: %w", err)
	}

	tickRate := s.Runtime.Normalized().TickRate

	w := s.Game.Machine().World()
	ebiten.SetWindowTitle("Bubble Dodge: " + s.Game.Title())
	ebiten.SetWindowSize(int(w.Width)/2, int(w.Height)/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tickRate)

	app := &app{
		ctx:    ctx,
		game:   s.Game,
		canvas: canvas,
		width:  int(w.Width),
		height: int(w.Height),
	}

	err = ebiten.RunGame(app)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// app adapts a game to ebiten.Game.
type app struct {
	ctx      context.Context
	game     *game.Game
	canvas   *ImageCanvas
	width    int
	height   int
	lastTick time.Time
}

// frame reads the keyboard and mouse for one tick.
func (a *app) frame() core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				frame.Set(action)
				break
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Press(float64(x), float64(y))
	}
	if a.game.State().Menu && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		p := a.game.PlayButtonCenter()
		frame.Press(p.X, p.Y)
	}
	return frame
}

// Update steps the game once per ebiten tick.
func (a *app) Update() error {
	select {
	case <-a.ctx.Done():
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Now()
	elapsed := time.Second / time.Duration(ebiten.TPS())
	if !a.lastTick.IsZero() {
		elapsed = now.Sub(a.lastTick)
	}
	a.lastTick = now

	if a.game.State().GameOver {
		return nil
	}
	a.game.Step(a.frame(), elapsed)
	return nil
}

// Draw paints the current frame.
func (a *app) Draw(screen *ebiten.Image) {
	a.canvas.SetTarget(screen)
	a.game.Draw(a.canvas)
}

// Layout keeps the field size as the logical screen; ebiten scales it to
// the window.
func (a *app) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

func init() {
	registry.Register("window", func() registry.Backend {
		return Backend{}
	})
}
