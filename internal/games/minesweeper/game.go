// Package minesweeper is the terminal front end of the sweeper engine: a
// cursor, flags, and a board drawn into the platform screen buffer.
package minesweeper

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// CustomID is the id of games built with NewCustom.
const CustomID = "custom"

// Game implements registry.Game on top of a sweeper.Engine.
type Game struct {
	preset config.Preset
	engine *sweeper.Engine

	cursor   sweeper.Coordinate
	flags    sweeper.Matrix
	exploded *sweeper.Coordinate
	message  string

	// lostMines holds the mine layout reported by a MineHit.
	lostMines sweeper.Matrix

	layout layout
}

func init() {
	for _, p := range config.Presets() {
		registry.Register(p.Name, func() registry.Game {
			return New(p)
		})
	}
}

// New creates a game for a preset. Presets are valid by construction.
func New(p config.Preset) *Game {
	return &Game{preset: p}
}

// NewCustom creates a game with any board size the engine accepts.
func NewCustom(size, mines int) (*Game, error) {
	if err := sweeper.ValidateDimensions(size, mines); err != nil {
		return nil, err
	}
	return New(config.Preset{Name: CustomID, Size: size, Mines: mines}), nil
}

// ID returns the preset name.
func (g *Game) ID() string {
	return g.preset.Name
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title()
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	return fmt.Sprintf("%dx%d board with %d mines", g.preset.Size, g.preset.Size, g.preset.Mines)
}

// Reset starts a new board. A zero seed picks a random layout.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	var opts []sweeper.Option
	if cfg.Seed != 0 {
		opts = append(opts, sweeper.WithSeed(uint64(cfg.Seed)))
	}
	g.engine = sweeper.NewEngine(opts...)

	g.cursor = sweeper.Coordinate{X: g.preset.Size / 2, Y: g.preset.Size / 2}
	g.flags = sweeper.NewMatrix(g.preset.Size)
	g.exploded = nil
	g.lostMines = sweeper.NewMatrix(g.preset.Size)
	g.message = ""

	if err := g.engine.Init(g.preset.Size, g.preset.Mines); err != nil {
		g.message = describeError(err)
	}
}

// Step applies one tick of input. Movement always works; reveals and flags
// are ignored once the game is over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.HasPointer {
		c, ok := g.layout.cellAt(in.Pointer.X, in.Pointer.Y)
		if !ok {
			return core.StepResult{State: g.State()}
		}
		g.cursor = c
	}

	if g.engine.Status().Terminal() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionFlag):
		g.toggleFlag(g.cursor)
	case in.Has(core.ActionReveal):
		g.reveal(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	last := g.preset.Size - 1
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, last)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, last)
}

// toggleFlag flips the flag on a covered cell. Flags never reach the engine.
func (g *Game) toggleFlag(c sweeper.Coordinate) {
	if g.engine.Revealed(c.X, c.Y) {
		return
	}
	g.flags.Set(c.X, c.Y, !g.flags.Get(c.X, c.Y))
	g.message = ""
}

// reveal forwards a reveal to the engine. Revealing a flagged cell only
// removes the flag.
func (g *Game) reveal(c sweeper.Coordinate) {
	if g.flags.Get(c.X, c.Y) {
		g.flags.Set(c.X, c.Y, false)
		return
	}

	res, err := g.engine.Reveal(c.X, c.Y)
	if err != nil {
		g.message = describeError(err)
		return
	}
	g.message = ""

	switch r := res.(type) {
	case sweeper.MineHit:
		cell := r.Cell
		g.exploded = &cell
		for _, m := range r.Mines {
			g.lostMines.Set(m.X, m.Y, true)
		}
	case sweeper.SafeReveal:
		for _, e := range r.Expanded {
			g.flags.Set(e.X, e.Y, false)
		}
	}
}

// State reports moves and the outcome to the platform.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	status := g.engine.Status()
	return core.GameState{
		Moves:    g.engine.Moves(),
		GameOver: status.Terminal(),
		Won:      status == sweeper.StatusWon,
	}
}

// Cursor returns the cell under the keyboard cursor.
func (g *Game) Cursor() sweeper.Coordinate {
	return g.cursor
}

// Message returns the status-line message of the last action, if any.
func (g *Game) Message() string {
	return g.message
}

// FlagCount returns the number of flags placed.
func (g *Game) FlagCount() int {
	return g.flags.Count()
}

func describeError(err error) string {
	switch {
	case errors.Is(err, sweeper.ErrOutOfBounds):
		return "That cell is off the board"
	case errors.Is(err, sweeper.ErrSessionOver):
		return "The game is over, press r for a new board"
	case errors.Is(err, sweeper.ErrInvalidConfiguration):
		return "Invalid board: " + err.Error()
	default:
		return err.Error()
	}
}
