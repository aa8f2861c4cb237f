package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-dodge/internal/config"
	"github.com/vovakirdan/bubble-dodge/internal/core"
)

func TestMenuCursorStartsOnDefaultProfile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Profile = config.ProfileNeglect

	m := NewMenuModel(cfg, core.DefaultConfig())
	if got := m.items[m.cursor].Name; got != config.ProfileNeglect {
		t.Errorf("cursor on %q, want %q", got, config.ProfileNeglect)
	}
	if len(m.items) != 3 {
		t.Errorf("items = %d, want 3", len(m.items))
	}
}

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel(config.DefaultConfig(), core.DefaultConfig())
	m.cursor = 0

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamps at the last item
	m = next.(MenuModel)
	if m.cursor != len(m.items)-1 {
		t.Fatalf("cursor = %d, want %d", m.cursor, len(m.items)-1)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil {
		t.Fatal("enter should select the item under the cursor")
	}
	if m.Selected().Name != m.items[len(m.items)-1].Name {
		t.Errorf("selected %q", m.Selected().Name)
	}
	if cmd == nil {
		t.Error("selecting should quit the picker")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(config.DefaultConfig(), core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(MenuModel)
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("esc should quit without a selection")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuViewListsProfiles(t *testing.T) {
	m := NewMenuModel(config.DefaultConfig(), core.DefaultConfig())
	view := m.View()

	for _, title := range []string{"Classic", "Neglect", "Endless"} {
		if !strings.Contains(view, title) {
			t.Errorf("view missing %q", title)
		}
	}
}

func TestSummary(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		profile string
		want    []string
	}{
		{config.ProfileClassic, []string{"bubbles kill", "up to 10 food"}},
		{config.ProfileNeglect, []string{"bubbles kill", "missed food ends the game", "up to 7 food"}},
		{config.ProfileEndless, []string{"bubbles are harmless", "no menu"}},
	}

	for _, tt := range tests {
		got := Summary(cfg.Profiles[tt.profile])
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("Summary(%s) = %q, missing %q", tt.profile, got, w)
			}
		}
	}
}
