package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// Each board cell is drawn as a glyph followed by a space.
const cellWidth = 2

// Lines around the board frame: title above, status and help below.
const (
	hudAbove = 1
	hudBelow = 2
)

// numberColors are indexed by neighbour count.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorPurple,
	core.ColorMaroon,
	core.ColorTeal,
	core.ColorDarkGray,
	core.ColorGray,
}

// layout records where the last Render put the board so mouse presses can
// be mapped back to cells.
type layout struct {
	frame  core.Rect
	origin core.Point // screen position of cell (0,0)
	size   int
}

func newLayout(screen core.Rect, size int) layout {
	w := size*cellWidth + 3
	h := size + 2
	block := screen.Centered(w, h+hudAbove+hudBelow)
	frame := core.NewRect(block.X, block.Y+hudAbove, w, h)
	return layout{
		frame:  frame,
		origin: core.Point{X: frame.X + 2, Y: frame.Y + 1},
		size:   size,
	}
}

// fits reports whether the board and its HUD are fully on screen.
func (l layout) fits(screen core.Rect) bool {
	return l.frame.X >= 0 && l.frame.Y-hudAbove >= 0 &&
		l.frame.Right() <= screen.Right() && l.frame.Bottom()+hudBelow <= screen.Bottom()
}

// cellAt maps a screen position to a board cell.
func (l layout) cellAt(px, py int) (sweeper.Coordinate, bool) {
	if l.size == 0 {
		return sweeper.Coordinate{}, false
	}
	cells := core.NewRect(l.origin.X, l.origin.Y, l.size*cellWidth, l.size)
	if !cells.Contains(px, py) {
		return sweeper.Coordinate{}, false
	}
	return sweeper.Coordinate{X: (px - l.origin.X) / cellWidth, Y: py - l.origin.Y}, true
}

// Render draws the board, the HUD and the end-of-game banner.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	screen := dst.Bounds()
	g.layout = newLayout(screen, g.preset.Size)
	if !g.layout.fits(screen) {
		g.layout = layout{}
		g.renderTooSmall(dst)
		return
	}

	g.renderTitle(dst)
	dst.DrawBox(g.layout.frame, core.ColorGray)
	g.renderBoard(dst)
	g.renderStatus(dst)
	g.renderBanner(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	need := fmt.Sprintf("Need %dx%d", g.preset.Size*cellWidth+3, g.preset.Size+2+hudAbove+hudBelow)
	dst.DrawTextCentered(y+1, need, core.ColorGray)
}

func (g *Game) renderTitle(dst *core.Screen) {
	dst.DrawTextCentered(g.layout.frame.Y-1, "MINESWEEPER  "+g.preset.Title(), core.ColorBrightWhite)
}

func (g *Game) renderBoard(dst *core.Screen) {
	for y := range g.preset.Size {
		for x := range g.preset.Size {
			c := g.cellGlyph(x, y)
			if g.cursor.X == x && g.cursor.Y == y && !g.State().GameOver {
				c.Bg = core.ColorCyan
				if c.Fg == core.ColorDefault || c.Fg == core.ColorCyan {
					c.Fg = core.ColorBlack
				}
			}
			dst.SetCell(g.layout.origin.X+x*cellWidth, g.layout.origin.Y+y, c)
		}
	}
}

func (g *Game) cellGlyph(x, y int) core.Cell {
	view, n := g.CellAt(x, y)
	switch view {
	case ViewFlag:
		return core.Cell{Rune: '⚑', Fg: core.ColorBrightRed}
	case ViewBlank:
		return core.Cell{Rune: ' '}
	case ViewNumber:
		return core.Cell{Rune: rune('0' + n), Fg: numberColors[n]}
	case ViewMine:
		return core.Cell{Rune: '*', Fg: core.ColorOrange}
	case ViewExploded:
		return core.Cell{Rune: '*', Fg: core.ColorBrightWhite, Bg: core.ColorRed}
	default:
		return core.Cell{Rune: '■', Fg: core.ColorGray}
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := g.layout.frame.Bottom()
	st := g.State()

	left := g.preset.Mines - g.flags.Count()
	status := fmt.Sprintf("Mines: %d  Flags: %d  Left: %d  Moves: %d",
		g.preset.Mines, g.flags.Count(), left, st.Moves)
	dst.DrawTextCentered(y, status, core.ColorWhite)

	switch {
	case g.message != "":
		dst.DrawTextCentered(y+1, g.message, core.ColorYellow)
	case st.GameOver:
		dst.DrawTextCentered(y+1, "Press r for a new board", core.ColorGray)
	}
}

func (g *Game) renderBanner(dst *core.Screen) {
	st := g.State()
	if !st.GameOver {
		return
	}

	text, bg := " You lose! ", core.ColorRed
	if st.Won {
		text, bg = " You win! ", core.ColorGreen
	}

	cx, cy := g.layout.frame.Center()
	x := cx - len(text)/2
	dst.DrawRect(core.NewRect(x-1, cy-1, len(text)+2, 3), core.Cell{Rune: ' ', Bg: bg})
	dst.DrawStyledText(x, cy, text, core.ColorBrightWhite, bg)
}
