package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// GameModel is the Bubble Tea model for one game. Input is collected into
// an InputFrame and applied to the game on every tick.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	keyMapper  *KeyMapper
	help       help.Model

	// standalone models quit on Back instead of returning to a menu.
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero seed in cfg is replaced
// with a time-based one.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := DefaultGameKeyMap()
	m := GameModel{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		// The board survives a resize; only the buffer changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.boardHeight())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.boardHeight())
		return m, nil
	}

	switch action := m.keyMapper.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.inputFrame.Empty() {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		m.inputFrame.Clear()
	}

	return m, tickCmd(m.config.TickRate)
}

// boardHeight is the screen height left after the help footer.
func (m GameModel) boardHeight() int {
	return max(m.config.ScreenH-lipgloss.Height(m.helpView()), 0)
}

func (m GameModel) helpView() string {
	return m.help.View(m.keys)
}

// View renders the game screen followed by the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked for the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
