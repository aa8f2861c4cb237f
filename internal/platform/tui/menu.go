package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-dodge/internal/config"
	"github.com/vovakirdan/bubble-dodge/internal/core"
)

// MenuItem represents a selectable rule profile in the picker.
type MenuItem struct {
	Name    string
	Title   string
	Summary string
}

// PickerKeyMap defines the key bindings for the profile picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPickerKeyMap returns the default picker bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pickerCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pickerSummaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// MenuModel is the Bubble Tea model for the rule profile picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	keys      PickerKeyMap
	help      help.Model
	quitting  bool
	selected  *MenuItem // Set when user selects a profile
}

// NewMenuModel creates a picker over the configured profiles. The cursor
// starts on the configured default profile.
func NewMenuModel(cfg config.Config, rt core.RuntimeConfig) MenuModel {
	names := cfg.ProfileNames()
	items := make([]MenuItem, 0, len(names))
	cursor := 0
	for i, name := range names {
		p := cfg.Profiles[name]
		items = append(items, MenuItem{
			Name:    name,
			Title:   p.Title,
			Summary: Summary(p),
		})
		if name == cfg.Profile {
			cursor = i
		}
	}

	h := help.New()
	h.Width = rt.ScreenW

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
		config:    rt,
		keyMapper: NewKeyMapper(),
		keys:      DefaultPickerKeyMap(),
		help:      h,
	}
}

// Summary describes a profile's rules in one line.
func Summary(p config.Profile) string {
	var rules []string
	if p.Rules.HazardLoss {
		rules = append(rules, "bubbles kill")
	} else {
		rules = append(rules, "bubbles are harmless")
	}
	if p.Rules.NeglectLoss {
		rules = append(rules, "missed food ends the game")
	}
	if !p.Rules.Menu {
		rules = append(rules, "no menu")
	}
	return fmt.Sprintf("%s; up to %d food", strings.Join(rules, ", "), p.Edible.Cap)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		pickerTitleStyle.Render("B U B B L E   D O D G E"),
		"",
		"Pick a rule profile",
		"",
	}
	for i, item := range m.items {
		cursor := "  "
		title := item.Title
		if i == m.cursor {
			cursor = pickerCursorStyle.Render("> ")
			title = pickerSelectedStyle.Render(title)
		}
		lines = append(lines, cursor+title+"  "+pickerSummaryStyle.Render(item.Summary))
	}
	lines = append(lines, "", m.help.ShortHelpView(m.keys.ShortHelp()))

	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Profile string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the picker and returns the selection result.
func RunMenu(cfg config.Config, rt core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, rt),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rt}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rt, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}
	result.Profile = m.Selected().Name
	return result, nil
}
