package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// GameKeyMap holds the key bindings used on the board. It implements
// help.KeyMap.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Reveal  key.Binding
	Flag    key.Binding
	Restart key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap returns the board bindings: arrows, hjkl and wasd move.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Reveal: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "reveal"),
		),
		Flag: key.NewBinding(
			key.WithKeys("f", "m"),
			key.WithHelp("f", "flag"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new board"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.Restart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag},
		{k.Restart, k.Back, k.Help, k.Quit},
	}
}

// MenuKeyMap holds the preset picker bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// KeyMapper translates Bubble Tea input into game actions.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a mapper over the given bindings.
func NewKeyMapper(keys GameKeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message. It returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Reveal):
		return core.ActionReveal
	case key.Matches(msg, km.keys.Flag):
		return core.ActionFlag
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapMouse translates a mouse press on the screen: the left button reveals
// and the right button flags. Other mouse events are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		frame.SetPointer(msg.X, msg.Y, core.ActionReveal)
	case tea.MouseButtonRight:
		frame.SetPointer(msg.X, msg.Y, core.ActionFlag)
	default:
		return false
	}
	return true
}
