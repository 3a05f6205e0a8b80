package core

// Color represents a fill color on a drawing surface.
// Terminal surfaces map it to ANSI 256-color codes, windowed surfaces to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// String returns the color name, matching the names used in config and logs.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "default"
	}
}
