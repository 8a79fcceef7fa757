package render

import (
	"os"
	"strings"
)

// TerminalCapabilities represents the features supported by the current terminal.
type TerminalCapabilities struct {
	Name          string
	SupportsColor bool
	ColorDepth    int // 0, 8, 256, or 24-bit
}

// DetectCapabilities detects the current terminal's capabilities.
func DetectCapabilities() TerminalCapabilities {
	return detectCapabilities(os.Getenv)
}

func detectCapabilities(getenv func(string) string) TerminalCapabilities {
	// Allow override via environment variable
	switch getenv("GRIDPATH_TERMINAL_MODE") {
	case "mono":
		return TerminalCapabilities{Name: "forced-mono"}
	case "color":
		return TerminalCapabilities{Name: "forced-color", SupportsColor: true, ColorDepth: 256}
	}

	term := getenv("TERM")
	caps := TerminalCapabilities{Name: term}
	if term != "" && !strings.Contains(term, "dumb") {
		if strings.Contains(term, "256color") {
			caps.SupportsColor = true
			caps.ColorDepth = 256
		} else if strings.Contains(term, "color") {
			caps.SupportsColor = true
			caps.ColorDepth = 8
		}
		if strings.HasPrefix(term, "xterm") || strings.HasPrefix(term, "screen") || strings.HasPrefix(term, "tmux") {
			caps.SupportsColor = true
			if caps.ColorDepth == 0 {
				caps.ColorDepth = 256
			}
		}
	}
	if colorterm := getenv("COLORTERM"); caps.SupportsColor && (colorterm == "truecolor" || colorterm == "24bit") {
		caps.ColorDepth = 24
	}

	// Check for NO_COLOR environment variable (https://no-color.org/)
	if getenv("NO_COLOR") != "" {
		caps.SupportsColor = false
		caps.ColorDepth = 0
	}
	return caps
}
