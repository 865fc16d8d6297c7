package core

// Color is a palette entry for a screen cell. The platform layer maps each
// entry to a terminal color; games only pick from the palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorPurple
	ColorMaroon
	ColorTeal
	ColorGray
	ColorDarkGray
	ColorBlack
)
