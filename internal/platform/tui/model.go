package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-dodge/internal/assets"
	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/game"
	"github.com/vovakirdan/bubble-dodge/internal/logging"
	"github.com/vovakirdan/bubble-dodge/internal/registry"
	"github.com/vovakirdan/bubble-dodge/internal/render"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	canvas    *render.CellCanvas
	config    core.RuntimeConfig
	keys      *KeyMapper
	help      help.Model
	hold      *core.HoldTracker
	presses   []core.Vec2 // Pointer presses waiting for the next tick
	lastTick  time.Time
	gameState core.GameState
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the session's game.
// The bottom terminal row is kept for the status bar.
func NewModel(s registry.Session) Model {
	cfg := s.Runtime.Normalized()
	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1))
	w := s.Game.Machine().World()

	var art map[string]assets.Art
	if s.Assets != nil {
		art = s.Assets.Art
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      s.Game,
		screen:    screen,
		canvas:    render.NewCellCanvas(screen, w.Width, w.Height, art),
		config:    cfg,
		keys:      NewKeyMapper(),
		help:      h,
		hold:      core.NewHoldTracker(s.Input.Hold),
		gameState: s.Game.State(),
		logger:    logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Terminals only report presses, so
// movement keys go through the hold tracker.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionConfirm:
		if m.gameState.Menu {
			m.presses = append(m.presses, m.game.PlayButtonCenter())
		}
	case core.ActionNone:
	default:
		m.hold.Press(action, now)
	}
	return m, nil
}

// handleMouse turns left clicks on the field into pointer presses.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}
	m.presses = append(m.presses, m.canvas.ToField(msg.X, msg.Y))
	return m, nil
}

// handleResize processes window resize events. The field keeps its size;
// only the scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	frame := core.NewInputFrame()
	m.hold.Apply(&frame, now)
	for _, p := range m.presses {
		frame.Press(p.X, p.Y)
	}
	m.presses = nil

	wasMenu := m.gameState.Menu
	result := m.game.Step(frame, elapsed)
	m.gameState = result.State

	if wasMenu && !m.gameState.Menu {
		// Keys held while clicking Play should not carry into the game
		m.hold.Reset()
	}

	// The final frame stays on screen until the player quits
	if m.gameState.GameOver {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Draw(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".bubble-dodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.canvas)

	status := m.help.ShortHelpView(m.keys.Keys().ShortHelp())
	if m.gameState.GameOver {
		status = fmt.Sprintf("Game over. Final score %d. Press q to quit.", m.gameState.Score)
	}
	return RenderFrame(m.screen, status)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}
