package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-dodge/internal/core"
)

// palette maps color slots to ANSI 256 color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorWater:  "24",
	core.ColorHazard: "39",
	core.ColorEdible: "2",
	core.ColorAvatar: "214",
	core.ColorButton: "28",
	core.ColorTitle:  "12",
	core.ColorLabel:  "15",
	core.ColorHint:   "245",
	core.ColorAlert:  "196",
}

// styleFor returns the lipgloss style for a cell color.
func styleFor(c core.Color) lipgloss.Style {
	fg, ok := palette[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	style := lipgloss.NewStyle().Foreground(fg)
	if c == core.ColorAlert || c == core.ColorLabel || c == core.ColorTitle {
		style = style.Bold(true)
	}
	return style
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are styled together to keep escape
// sequences short.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		current := s.GetCell(0, y).Color
		flush := func() {
			if len(run) > 0 {
				sb.WriteString(styleFor(current).Render(string(run)))
				run = run[:0]
			}
		}

		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				flush()
				current = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush()
	}
	return sb.String()
}

// RenderFrame stacks the play field above a one-line status bar.
func RenderFrame(s *core.Screen, status string) string {
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(s), statusStyle.Render(status))
}
