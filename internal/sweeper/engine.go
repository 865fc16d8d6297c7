package sweeper

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

// Engine is one game session. The zero value is not usable; create engines
// with NewEngine and start a session with Init.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	rng *rand.Rand

	size      int
	mineCount int
	mines     Matrix
	revealed  Matrix

	moves         int
	revealedCount int
	minesPlaced   bool
	status        Status
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed makes mine placement deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// NewEngine creates an engine. Without options mine placement is seeded
// from a process-random value.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return e
}

// ValidateDimensions checks that a size x size board can hold mineCount
// mines with at least one safe cell left for the first reveal.
func ValidateDimensions(size, mineCount int) error {
	if size < 1 {
		return fmt.Errorf("sweeper: size %d must be positive: %w", size, ErrInvalidConfiguration)
	}
	if mineCount < 0 {
		return fmt.Errorf("sweeper: mine count %d must not be negative: %w", mineCount, ErrInvalidConfiguration)
	}
	if mineCount >= size*size {
		return fmt.Errorf("sweeper: %d mines do not fit a %dx%d grid: %w",
			mineCount, size, size, ErrInvalidConfiguration)
	}
	return nil
}

// Init starts a new session, discarding any previous one. Mines are not
// placed until the first Reveal. On error the previous session is kept.
func (e *Engine) Init(size, mineCount int) error {
	if err := ValidateDimensions(size, mineCount); err != nil {
		return err
	}

	e.size = size
	e.mineCount = mineCount
	e.mines = NewMatrix(size)
	e.revealed = NewMatrix(size)
	e.moves = 0
	e.revealedCount = 0
	e.minesPlaced = false
	e.status = StatusInProgress
	return nil
}

// InitWithLayout starts a new session with a fixed mine layout instead of
// deferred random placement. The first reveal may hit a mine. It is meant
// for replays and tests.
func (e *Engine) InitWithLayout(size int, mines []Coordinate) error {
	if err := ValidateDimensions(size, len(mines)); err != nil {
		return err
	}

	field := NewMatrix(size)
	for _, m := range mines {
		if !field.InBounds(m.X, m.Y) {
			return fmt.Errorf("sweeper: mine %v on %dx%d grid: %w", m, size, size, ErrOutOfBounds)
		}
		if field.Get(m.X, m.Y) {
			return fmt.Errorf("sweeper: duplicate mine %v: %w", m, ErrInvalidConfiguration)
		}
		field.Set(m.X, m.Y, true)
	}

	if err := e.Init(size, len(mines)); err != nil {
		return err
	}
	e.mines = field
	e.minesPlaced = true
	return nil
}

// Reveal uncovers the cell at (x, y).
//
// The first reveal of a session places the mines, never under (x, y).
// A revealed mine loses the session and returns MineHit. Otherwise the cell
// is uncovered, a newly uncovered zero-count cell flood-fills its region,
// and SafeReveal reports what changed.
//
// Reveal fails without changing any state when the session is not
// initialized, already over, or (x, y) is outside the grid.
func (e *Engine) Reveal(x, y int) (SweepResult, error) {
	switch {
	case e.status == StatusNotStarted:
		return nil, fmt.Errorf("sweeper: reveal %v: %w", Coordinate{x, y}, ErrNotInitialized)
	case e.status.Terminal():
		return nil, fmt.Errorf("sweeper: reveal %v: session %s: %w", Coordinate{x, y}, e.status, ErrSessionOver)
	case !e.mines.InBounds(x, y):
		return nil, fmt.Errorf("sweeper: reveal %v on %dx%d grid: %w",
			Coordinate{x, y}, e.size, e.size, ErrOutOfBounds)
	}

	origin := Coordinate{X: x, Y: y}

	if e.moves == 0 && !e.minesPlaced {
		e.placeMines(origin)
	}
	e.moves++

	if e.mines.Get(x, y) {
		e.status = StatusLost
		return MineHit{Cell: origin, Mines: e.mines.Coordinates()}, nil
	}

	result := SafeReveal{
		Cell:        origin,
		MinesAround: e.mines.countAround(x, y),
		Expanded:    []RevealedCell{},
	}

	// A cell that was already uncovered changes nothing, so its region is
	// not reported again.
	wasRevealed := e.revealed.Get(x, y)
	e.markRevealed(x, y)

	if result.MinesAround == 0 && !wasRevealed {
		for _, cell := range e.expand(origin) {
			if cell.Coordinate == origin {
				continue
			}
			e.markRevealed(cell.X, cell.Y)
			result.Expanded = append(result.Expanded, cell)
		}
	}

	if e.revealedCount == e.size*e.size-e.mineCount {
		e.status = StatusWon
		result.UserWins = true
	}

	return result, nil
}

// markRevealed uncovers (x, y) and keeps the running revealed count.
func (e *Engine) markRevealed(x, y int) {
	if e.revealed.Get(x, y) {
		return
	}
	e.revealed.Set(x, y, true)
	e.revealedCount++
}

// Size returns the side length of the current grid.
func (e *Engine) Size() int { return e.size }

// MineCount returns the number of mines in the current session.
func (e *Engine) MineCount() int { return e.mineCount }

// Moves returns the number of accepted Reveal calls since Init.
func (e *Engine) Moves() int { return e.moves }

// Status returns the session state.
func (e *Engine) Status() Status { return e.status }

// MinesPlaced reports whether the first reveal has placed the mines.
func (e *Engine) MinesPlaced() bool { return e.minesPlaced }

// RevealedCount returns how many cells are uncovered.
func (e *Engine) RevealedCount() int { return e.revealedCount }

// SafeCellsLeft returns how many non-mine cells are still covered.
func (e *Engine) SafeCellsLeft() int {
	return e.size*e.size - e.mineCount - e.revealedCount
}

// Revealed reports whether (x, y) is uncovered. Out-of-range coordinates
// report false.
func (e *Engine) Revealed(x, y int) bool {
	v, ok := e.revealed.GetSafe(x, y)
	return ok && v
}

// MinesAround returns the number of mines adjacent to (x, y), or 0 when the
// coordinate is out of range or mines are not placed yet.
func (e *Engine) MinesAround(x, y int) int {
	if !e.minesPlaced || !e.mines.InBounds(x, y) {
		return 0
	}
	return e.mines.countAround(x, y)
}

// Mines returns every mine coordinate in row-major order, or nil before the
// first reveal.
func (e *Engine) Mines() []Coordinate {
	if !e.minesPlaced {
		return nil
	}
	return e.mines.Coordinates()
}
