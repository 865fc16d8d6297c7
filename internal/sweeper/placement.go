package sweeper

// placeMines puts exactly mineCount mines on the board, never on exclude.
// Each mine is drawn uniformly from the whole grid and redrawn on a
// collision with exclude or an existing mine. Init guarantees at least one
// free cell besides exclude remains for every draw.
func (e *Engine) placeMines(exclude Coordinate) {
	for placed := 0; placed < e.mineCount; {
		x := e.rng.IntN(e.size)
		y := e.rng.IntN(e.size)

		if x == exclude.X && y == exclude.Y {
			continue
		}
		if e.mines.Get(x, y) {
			continue
		}
		e.mines.Set(x, y, true)
		placed++
	}
	e.minesPlaced = true
}
