package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/bubble-dodge/internal/assets"
	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/game"
	"github.com/vovakirdan/bubble-dodge/internal/logging"
	"github.com/vovakirdan/bubble-dodge/internal/registry"
	"github.com/vovakirdan/bubble-dodge/internal/render"
)

// palette maps color slots to the 256 color palette.
var palette = map[core.Color]tcell.Color{
	core.ColorWater:  tcell.PaletteColor(24),
	core.ColorHazard: tcell.PaletteColor(39),
	core.ColorEdible: tcell.PaletteColor(2),
	core.ColorAvatar: tcell.PaletteColor(214),
	core.ColorButton: tcell.PaletteColor(28),
	core.ColorTitle:  tcell.PaletteColor(12),
	core.ColorLabel:  tcell.PaletteColor(15),
	core.ColorHint:   tcell.PaletteColor(245),
	core.ColorAlert:  tcell.PaletteColor(196),
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(241))

func styleFor(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	style := tcell.StyleDefault.Foreground(fg)
	if c == core.ColorAlert || c == core.ColorLabel || c == core.ColorTitle {
		style = style.Bold(true)
	}
	return style
}

// mapKey translates a key event to a game action.
func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case ' ':
			return core.ActionConfirm
		}
	}
	return core.ActionNone
}

// runner holds the per-session loop state.
type runner struct {
	screen   tcell.Screen
	game     *game.Game
	buffer   *core.Screen
	canvas   *render.CellCanvas
	hold     *core.HoldTracker
	presses  []core.Vec2
	buttons  tcell.ButtonMask // Mouse buttons held at the last mouse event
	tickRate int
	lastTick time.Time
	state    core.GameState
	logger   *log.Logger
}

func newRunner(screen tcell.Screen, s registry.Session) *runner {
	tickRate := s.Runtime.Normalized().TickRate
	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	var art map[string]assets.Art
	if s.Assets != nil {
		art = s.Assets.Art
	}

	w, h := screen.Size()
	buffer := core.NewScreen(core.Max(w, 1), core.Max(h-1, 1))
	world := s.Game.Machine().World()

	return &runner{
		screen:   screen,
		game:     s.Game,
		buffer:   buffer,
		canvas:   render.NewCellCanvas(buffer, world.Width, world.Height, art),
		hold:     core.NewHoldTracker(s.Input.Hold),
		tickRate: tickRate,
		state:    s.Game.State(),
		logger:   logger,
	}
}

// handleEvent processes one terminal event and reports whether the player
// asked to quit.
func (r *runner) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch action := mapKey(ev); action {
		case core.ActionQuit:
			return true
		case core.ActionConfirm:
			if r.state.Menu {
				r.presses = append(r.presses, r.game.PlayButtonCenter())
			}
		case core.ActionNone:
		default:
			r.hold.Press(action, now)
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && r.buttons&tcell.Button1 == 0
		r.buttons = buttons
		if !pressed {
			return false
		}
		x, y := ev.Position()
		if y < r.buffer.Height() {
			r.presses = append(r.presses, r.canvas.ToField(x, y))
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		r.buffer.Resize(core.Max(w, 1), core.Max(h-1, 1))
		r.screen.Sync()
		r.logger.Debug("terminal resized", "width", w, "height", h)
	}
	return false
}

// tick runs one simulation step with the input gathered since the last one.
func (r *runner) tick(now time.Time) {
	if r.state.GameOver {
		return
	}

	elapsed := time.Second / time.Duration(r.tickRate)
	if !r.lastTick.IsZero() {
		elapsed = now.Sub(r.lastTick)
	}
	r.lastTick = now

	frame := core.NewInputFrame()
	r.hold.Apply(&frame, now)
	for _, p := range r.presses {
		frame.Press(p.X, p.Y)
	}
	r.presses = nil

	wasMenu := r.state.Menu
	r.state = r.game.Step(frame, elapsed).State
	if wasMenu && !r.state.Menu {
		r.hold.Reset()
	}
}

// draw renders the game and the status line onto the tcell screen.
func (r *runner) draw() {
	r.game.Draw(r.canvas)

	r.screen.Clear()
	for y := 0; y < r.buffer.Height(); y++ {
		for x := 0; x < r.buffer.Width(); x++ {
			cell := r.buffer.GetCell(x, y)
			r.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}

	status := "←↑↓→/wasd move • enter play • q quit"
	if r.state.GameOver {
		status = fmt.Sprintf("Game over. Final score %d. Press q to quit.", r.state.Score)
	}
	row := r.buffer.Height()
	for i, ch := range []rune(status) {
		r.screen.SetContent(i, row, ch, nil, statusStyle)
	}
	r.screen.Show()
}
