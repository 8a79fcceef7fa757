package canvas

import (
	"gridpath/core"
	"strings"
)

// ColoredMatrixCanvas extends MatrixCanvas with an ANSI color per cell.
type ColoredMatrixCanvas struct {
	*MatrixCanvas
	colors [][]string // Color code for each position
}

// NewColoredMatrixCanvas creates a new colored matrix canvas
func NewColoredMatrixCanvas(width, height int) (*ColoredMatrixCanvas, error) {
	m, err := NewMatrixCanvas(width, height)
	if err != nil {
		return nil, err
	}
	colors := make([][]string, height)
	for i := range colors {
		colors[i] = make([]string, width)
	}
	return &ColoredMatrixCanvas{MatrixCanvas: m, colors: colors}, nil
}

// SetWithColor sets a character with a color name understood by GetColorCode.
func (c *ColoredMatrixCanvas) SetWithColor(p core.Point, char rune, color string) error {
	if err := c.MatrixCanvas.Set(p, char); err != nil {
		return err
	}
	c.colors[p.Y][p.X] = GetColorCode(color)
	return nil
}

// Clear resets every cell to an uncolored space.
func (c *ColoredMatrixCanvas) Clear() {
	c.MatrixCanvas.Clear()
	for y := range c.colors {
		for x := range c.colors[y] {
			c.colors[y][x] = ""
		}
	}
}

// ColoredString returns the canvas as a string with ANSI color codes.
// Color runs are reset before every change and at the end of each line.
func (c *ColoredMatrixCanvas) ColoredString() string {
	var sb strings.Builder

	for y := 0; y < c.height; y++ {
		row := c.matrix[y]
		end := len(row)
		for end > 0 && row[end-1] == ' ' && c.colors[y][end-1] == "" {
			end--
		}

		currentColor := ""
		for x := 0; x < end; x++ {
			color := c.colors[y][x]
			if color != currentColor {
				if currentColor != "" {
					sb.WriteString(ColorReset)
				}
				sb.WriteString(color)
				currentColor = color
			}
			sb.WriteRune(row[x])
		}
		if currentColor != "" {
			sb.WriteString(ColorReset)
		}

		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}
