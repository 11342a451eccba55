package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-colour codes in the platform renderer.
type Color uint8

// Palette shared by the games.
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
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorGold
	ColorNavy
	ColorTeal
)

// Fade picks a dimmer colour for low alpha values.
// Used for particles and floating texts that fade out.
func Fade(c Color, alpha float64) Color {
	if Clamp01(alpha) < 0.35 {
		return ColorGray
	}
	return c
}
