package core

// Color is a palette slot for a screen cell. The platform decides how each
// slot looks; games only pick slots.
type Color uint8

// Palette slots. Piece variants map onto the plain hues, the HUD uses the
// bright ones, and the grays draw the grid and ghost.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)
