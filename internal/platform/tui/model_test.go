package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-dodge/internal/config"
	"github.com/vovakirdan/bubble-dodge/internal/core"
	"github.com/vovakirdan/bubble-dodge/internal/game"
	"github.com/vovakirdan/bubble-dodge/internal/registry"
	"github.com/vovakirdan/bubble-dodge/internal/sim"
)

func newTestModel(t *testing.T, profile string) Model {
	t.Helper()

	p, name, err := config.DefaultConfig().Select(profile)
	if err != nil {
		t.Fatalf("Select(%q): %v", profile, err)
	}
	g := game.New(name, p, nil)
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}
	g.Reset(rt)

	return NewModel(registry.Session{
		Game:    g,
		Runtime: rt,
		Input:   config.InputConfig{Hold: 150 * time.Millisecond},
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func startGame(t *testing.T, m Model, now time.Time) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.handleTick(now)
	m = next.(Model)
	if m.State().Menu {
		t.Fatal("game still in menu after Enter and a tick")
	}
	return m
}

func TestModelStartsInMenu(t *testing.T) {
	m := newTestModel(t, config.ProfileClassic)

	if !m.State().Menu {
		t.Error("classic profile should start in the menu")
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}

	view := m.View()
	if !strings.Contains(view, "Play") {
		t.Error("menu view should show the play button")
	}
	if !strings.Contains(view, "quit") {
		t.Error("status bar should show key help")
	}
}

func TestModelEnterStartsGame(t *testing.T) {
	m := newTestModel(t, config.ProfileClassic)
	m = startGame(t, m, time.Now())

	if got := m.game.Machine().Ticks(); got != 1 {
		t.Errorf("ticks after start = %d, want 1", got)
	}
	if len(m.presses) != 0 {
		t.Error("pending presses should be consumed by the tick")
	}
}

func TestModelMouseClickStartsGame(t *testing.T) {
	m := newTestModel(t, config.ProfileClassic)

	col, row := m.canvas.ToCell(m.game.PlayButtonCenter())
	m, _ = update(t, m, tea.MouseMsg{
		X:      col,
		Y:      row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if len(m.presses) != 1 {
		t.Fatalf("presses = %d, want 1", len(m.presses))
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if m.State().Menu {
		t.Error("click on the play button should start the game")
	}
	if cmd == nil {
		t.Error("a running game should schedule the next tick")
	}
}

func TestModelIgnoresOtherMouseEvents(t *testing.T) {
	m := newTestModel(t, config.ProfileClassic)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 24, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if len(m.presses) != 0 {
		t.Errorf("presses = %d, want 0", len(m.presses))
	}
}

func TestModelHeldKeyMovesAvatar(t *testing.T) {
	m := newTestModel(t, config.ProfileClassic)
	t0 := time.Now()
	m = startGame(t, m, t0)

	start := m.game.Machine().World().Avatar.Pos

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, t0)
	m = next.(Model)
	next, _ = m.handleTick(t0.Add(10 * time.Millisecond))
	m = next.(Model)
	next, _ = m.handleTick(t0.Add(20 * time.Millisecond))
	m = next.(Model)

	a := m.game.Machine().World().Avatar
	if a.Pos.X <= start.X {
		t.Errorf("avatar x = %v, want > %v", a.Pos.X, start.X)
	}
	if a.Facing != sim.FacingRight {
		t.Errorf("facing = %v, want right", a.Facing)
	}

	// The hold window has passed; the avatar stops.
	stopped := a.Pos
	next, _ = m.handleTick(t0.Add(time.Second))
	m = next.(Model)
	if got := m.game.Machine().World().Avatar.Pos; got != stopped {
		t.Errorf("avatar moved after the hold expired: %v -> %v", stopped, got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.ProfileClassic)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelGameOverStopsTicking(t *testing.T) {
	m := newTestModel(t, config.ProfileClassic)
	t0 := time.Now()
	m = startGame(t, m, t0)

	w := m.game.Machine().World()
	w.Hazards = append(w.Hazards, sim.Hazard{ID: 999, Pos: w.Avatar.Pos, Radius: 20, Lethal: true})

	m, cmd := update(t, m, TickMsg(t0.Add(time.Second/60)))
	if !m.State().GameOver {
		t.Fatal("hazard on the avatar should end the game")
	}
	if cmd != nil {
		t.Error("no further ticks should be scheduled after game over")
	}
	if !strings.Contains(m.View(), "Game over") {
		t.Error("status bar should announce game over")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, config.ProfileClassic)
	m = startGame(t, m, time.Now())
	before := m.game.Machine()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.game.Machine() != before {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelEndlessSkipsMenu(t *testing.T) {
	m := newTestModel(t, config.ProfileEndless)
	if m.State().Menu {
		t.Error("endless profile should start playing")
	}
}
