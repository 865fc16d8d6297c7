package sweeper

// SweepResult is the outcome of a single Reveal call. It is implemented by
// exactly two types, MineHit and SafeReveal; consumers switch on the
// concrete type.
type SweepResult interface {
	// Origin returns the coordinate that was revealed.
	Origin() Coordinate

	sweepResult()
}

// MineHit is returned when the revealed cell holds a mine. Mines lists
// every mine on the board in row-major order.
type MineHit struct {
	Cell  Coordinate
	Mines []Coordinate
}

// Origin returns the cell that detonated.
func (r MineHit) Origin() Coordinate { return r.Cell }

func (MineHit) sweepResult() {}

// RevealedCell is one cell uncovered by a flood-fill expansion together
// with its own neighbour mine count.
type RevealedCell struct {
	Coordinate
	MinesAround int `json:"mines_around"`
}

// SafeReveal is returned when the revealed cell holds no mine.
type SafeReveal struct {
	Cell        Coordinate
	MinesAround int

	// Expanded holds the cells uncovered by the flood fill, in breadth-first
	// order, excluding Cell. It is empty when MinesAround > 0 or when Cell
	// was already revealed.
	Expanded []RevealedCell

	// UserWins is set when this reveal uncovered the last safe cell.
	UserWins bool
}

// Origin returns the revealed cell.
func (r SafeReveal) Origin() Coordinate { return r.Cell }

func (SafeReveal) sweepResult() {}
