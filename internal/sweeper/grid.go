// Package sweeper implements the minesweeper game engine: deferred mine
// placement with a safe first reveal, Moore-neighbour counting and
// breadth-first expansion of zero-count regions.
//
// The package has no external dependencies and does no I/O, so every
// presentation layer (terminal, SSH, websocket) drives the same logic.
package sweeper

import "fmt"

// Coordinate identifies a cell. X is the column and Y is the row.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the coordinate formatted as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Matrix is a square grid of booleans stored row-major: cells[y][x].
// It backs both the mine field and the revealed mask.
type Matrix struct {
	size  int
	cells [][]bool
}

// NewMatrix creates a size x size matrix with every cell false.
func NewMatrix(size int) Matrix {
	cells := make([][]bool, size)
	for y := range cells {
		cells[y] = make([]bool, size)
	}
	return Matrix{size: size, cells: cells}
}

// Size returns the side length of the matrix.
func (m Matrix) Size() int {
	return m.size
}

// InBounds reports whether (x, y) lies inside the matrix.
func (m Matrix) InBounds(x, y int) bool {
	return x >= 0 && x < m.size && y >= 0 && y < m.size
}

// Get returns the value at (x, y). The caller guarantees the coordinate is
// in range.
func (m Matrix) Get(x, y int) bool {
	return m.cells[y][x]
}

// GetSafe returns the value at (x, y). ok is false when the coordinate
// falls outside the matrix, in which case value is always false.
func (m Matrix) GetSafe(x, y int) (value, ok bool) {
	if !m.InBounds(x, y) {
		return false, false
	}
	return m.cells[y][x], true
}

// Set stores v at (x, y). The caller guarantees the coordinate is in range.
func (m Matrix) Set(x, y int, v bool) {
	m.cells[y][x] = v
}

// Count returns the number of true cells.
func (m Matrix) Count() int {
	n := 0
	for y := range m.cells {
		for _, v := range m.cells[y] {
			if v {
				n++
			}
		}
	}
	return n
}

// Coordinates returns every true cell in row-major order.
func (m Matrix) Coordinates() []Coordinate {
	var out []Coordinate
	for y := range m.cells {
		for x, v := range m.cells[y] {
			if v {
				out = append(out, Coordinate{X: x, Y: y})
			}
		}
	}
	return out
}

// Neighbors returns the in-bounds Moore neighbours of c in row-major
// order. c itself is not included.
func (m Matrix) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if _, ok := m.GetSafe(c.X+dx, c.Y+dy); ok {
				out = append(out, Coordinate{X: c.X + dx, Y: c.Y + dy})
			}
		}
	}
	return out
}

// countAround returns how many Moore neighbours of (x, y) are true.
// Out-of-bounds neighbours contribute zero.
func (m Matrix) countAround(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if v, ok := m.GetSafe(x+dx, y+dy); ok && v {
				n++
			}
		}
	}
	return n
}
