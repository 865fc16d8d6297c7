package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/logging"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// SessionModel runs the full flow in one program: menu -> game -> menu.
// It backs the menu command and every SSH session.
type SessionModel struct {
	config    core.RuntimeConfig
	defaultID string
	username  string
	logger    *log.Logger

	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a session starting at the menu. logger may be nil.
func NewSessionModel(cfg core.RuntimeConfig, defaultID, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return SessionModel{
		config:    cfg,
		defaultID: defaultID,
		username:  username,
		logger:    logger,
		menu:      NewMenuModel(cfg, defaultID),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the menu or the running game.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", selected.GameID, "error", err)
		m.menu = NewMenuModel(m.config, m.defaultID)
		return m, nil
	}

	m.logger.Info("game started", "user", m.username, "game", game.ID())

	gameModel := NewGameModel(game, m.config)
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.gameModel.State()

	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	after := m.gameModel.State()
	if after.GameOver && !before.GameOver {
		m.logger.Info("game finished",
			"user", m.username,
			"game", m.gameModel.game.ID(),
			"won", after.Won,
			"moves", after.Moves,
		)
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.config, m.defaultID)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the menu or the running game.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}
