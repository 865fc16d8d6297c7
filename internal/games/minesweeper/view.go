package minesweeper

import "github.com/vovakirdan/tui-sweeper/internal/sweeper"

// CellView is what the player sees in one cell.
type CellView int

const (
	ViewCovered CellView = iota
	ViewFlag
	ViewBlank
	ViewNumber
	ViewMine
	ViewExploded
)

// CellAt returns the view of (x, y) and, for ViewNumber, the neighbour
// mine count.
//
// After a loss every mine is shown and the detonated one is marked. After
// a win the remaining covered cells, all mines, are shown as flags.
func (g *Game) CellAt(x, y int) (CellView, int) {
	if g.engine == nil || !g.flags.InBounds(x, y) {
		return ViewCovered, 0
	}

	if g.engine.Revealed(x, y) {
		n := g.engine.MinesAround(x, y)
		if n == 0 {
			return ViewBlank, 0
		}
		return ViewNumber, n
	}

	switch g.engine.Status() {
	case sweeper.StatusLost:
		if g.exploded != nil && *g.exploded == (sweeper.Coordinate{X: x, Y: y}) {
			return ViewExploded, 0
		}
		if g.lostMines.Get(x, y) {
			if g.flags.Get(x, y) {
				return ViewFlag, 0
			}
			return ViewMine, 0
		}
	case sweeper.StatusWon:
		return ViewFlag, 0
	}

	if g.flags.Get(x, y) {
		return ViewFlag, 0
	}
	return ViewCovered, 0
}
