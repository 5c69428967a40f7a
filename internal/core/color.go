package core

// Color is a palette entry for frame primitives and screen cells.
// Platforms map it to terminal colors.
type Color uint8

// Palette used by the snake frames.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorGray
)
