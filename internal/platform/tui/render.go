package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// palette maps core colors to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorBlue:        "33",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "81",
	core.ColorWhite:       "7",
	core.ColorBrightRed:   "196",
	core.ColorBrightGreen: "10",
	core.ColorBrightWhite: "15",
	core.ColorOrange:      "208",
	core.ColorPurple:      "99",
	core.ColorMaroon:      "160",
	core.ColorTeal:        "37",
	core.ColorGray:        "248",
	core.ColorDarkGray:    "240",
	core.ColorBlack:       "235",
}

type cellStyle struct {
	fg, bg core.Color
}

// style returns the lipgloss style for a color pair. ColorDefault leaves
// the terminal color unchanged.
func (c cellStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg, ok := palette[c.fg]; ok {
		s = s.Foreground(fg)
	}
	if bg, ok := palette[c.bg]; ok {
		s = s.Background(bg)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := cellStyle{fg: first.Fg, bg: first.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[key]
			if !ok {
				style = key.style()
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
