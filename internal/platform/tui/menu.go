package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).MarginBottom(1)
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("248")).PaddingLeft(2)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true).PaddingLeft(2)
	menuDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).PaddingLeft(4)
)

// MenuItem is one selectable board in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the board picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem

	// exitOnSelect quits the program on selection, for RunMenu.
	exitOnSelect bool
}

// NewMenuModel creates a menu over every registered game. The cursor
// starts on defaultID when it is registered.
func NewMenuModel(cfg core.RuntimeConfig, defaultID string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	cursor := 0
	for i, g := range games {
		if g.ID == defaultID {
			cursor = i
		}
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:  items,
		cursor: cursor,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			if m.exitOnSelect {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// View renders the menu centered on the screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("M I N E S W E E P E R"))
	b.WriteString("\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("> " + item.Title))
		} else {
			b.WriteString(menuItemStyle.Render("  " + item.Title))
		}
		b.WriteString("\n")
		if item.Description != "" {
			b.WriteString(menuDescStyle.Render(item.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (updated on resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the outcome of RunMenu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu shows the menu in the local terminal and returns the choice.
func RunMenu(cfg core.RuntimeConfig, defaultID string) (MenuResult, error) {
	model := NewMenuModel(cfg, defaultID)
	model.exitOnSelect = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{
		GameID: m.Selected().GameID,
		Config: m.Config(),
	}, nil
}
