package sweeper

// expand runs the breadth-first flood fill from a zero-count origin.
//
// The returned sequence starts with origin and lists every cell reachable
// through adjacent zero-count cells, plus the numbered cells bordering that
// region. Each cell appears exactly once. Numbered cells are recorded but
// never propagate.
func (e *Engine) expand(origin Coordinate) []RevealedCell {
	queue := []RevealedCell{{Coordinate: origin}}
	queued := map[Coordinate]struct{}{origin: {}}
	done := make([]RevealedCell, 0, 16)
	seen := make(map[Coordinate]struct{})

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		done = append(done, current)
		seen[current.Coordinate] = struct{}{}

		for _, n := range e.safeNeighbors(current.Coordinate) {
			if _, ok := seen[n.Coordinate]; ok {
				continue
			}
			if n.MinesAround > 0 {
				done = append(done, n)
				seen[n.Coordinate] = struct{}{}
				continue
			}
			if _, ok := queued[n.Coordinate]; !ok {
				queue = append(queue, n)
				queued[n.Coordinate] = struct{}{}
			}
		}
	}

	return done
}

// safeNeighbors returns the in-bounds, mine-free Moore neighbours of c,
// each with its own neighbour mine count.
func (e *Engine) safeNeighbors(c Coordinate) []RevealedCell {
	out := make([]RevealedCell, 0, 8)
	for _, n := range e.mines.Neighbors(c) {
		if e.mines.Get(n.X, n.Y) {
			continue
		}
		out = append(out, RevealedCell{
			Coordinate:  n,
			MinesAround: e.mines.countAround(n.X, n.Y),
		})
	}
	return out
}
