package canvas

// ANSI color codes
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorWhite   = "\033[37m"

	// Text style codes
	StyleBold = "\033[1m"
	StyleDim  = "\033[2m"
)

// GetColorCode returns the ANSI code for a color name, optionally prefixed
// with "bold+" or "dim+". Unknown names yield "".
func GetColorCode(color string) string {
	style := ""
	switch {
	case len(color) > 5 && color[:5] == "bold+":
		style, color = StyleBold, color[5:]
	case len(color) > 4 && color[:4] == "dim+":
		style, color = StyleDim, color[4:]
	}

	var code string
	switch color {
	case "red":
		code = ColorRed
	case "green":
		code = ColorGreen
	case "yellow":
		code = ColorYellow
	case "blue":
		code = ColorBlue
	case "magenta":
		code = ColorMagenta
	case "cyan":
		code = ColorCyan
	case "white":
		code = ColorWhite
	case "bold":
		return StyleBold
	case "dim":
		return StyleDim
	default:
		return ""
	}
	return style + code
}
