package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-dodge/internal/registry"
)

// Backend runs games in the terminal through Bubble Tea.
type Backend struct{}

// ID returns "tui".
func (Backend) ID() string {
	return "tui"
}

// Title returns the display name.
func (Backend) Title() string {
	return "Terminal (Bubble Tea, mouse and keyboard)"
}

// Run plays the session on the alternate screen until the player quits.
func (Backend) Run(ctx context.Context, s registry.Session) error {
	p := tea.NewProgram(
		NewModel(s),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks press the play button
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func init() {
	registry.Register("tui", func() registry.Backend {
		return Backend{}
	})
}
