package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position of the screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blank is the value of a cleared cell.
var blank = Cell{Rune: ' '}

// Screen is a 2D cell buffer games draw into. The platform turns it into
// terminal output, so games never touch Bubble Tea or lipgloss.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a cleared screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, keeping the top-left content.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := 0; y < min(len(old), height); y++ {
		copy(s.cells[y], old[y])
	}
}

// Clear resets every cell to a blank with default colors.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a rune with default colors. Out-of-bounds coordinates are
// silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a cell. Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position, or a space when out of
// bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank when out of
// bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes text starting at (x, y) with default colors, clipped at
// the screen edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyledText(x, y, text, ColorDefault, ColorDefault)
}

// DrawStyledText writes text starting at (x, y) with the given colors.
func (s *Screen) DrawStyledText(x, y int, text string, fg, bg Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Fg: fg, Bg: bg})
		i++
	}
}

// DrawTextCentered draws text horizontally centered on row y.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawStyledText(x, y, text, fg, ColorDefault)
}

// DrawRect fills a rectangular area with the given cell.
func (s *Screen) DrawRect(r Rect, fill Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, fill)
		}
	}
}

// DrawBox draws a box outline with box-drawing characters in color fg.
func (s *Screen) DrawBox(r Rect, fg Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	edge := func(x, y int, ch rune) { s.SetCell(x, y, Cell{Rune: ch, Fg: fg}) }

	edge(r.X, r.Y, '┌')
	edge(r.Right()-1, r.Y, '┐')
	edge(r.X, r.Bottom()-1, '└')
	edge(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		edge(x, r.Y, '─')
		edge(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		edge(r.X, y, '│')
		edge(r.Right()-1, y, '│')
	}
}

// String returns the runes of the buffer without colors, rows joined with
// newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range s.width {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
