// Package canvas provides a rune matrix that boards are laid out on before printing.
package canvas

import (
	"errors"
	"gridpath/core"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// MatrixCanvas is a fixed-size rune matrix.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - All coordinates are in character cells
//
// MatrixCanvas is NOT thread-safe for writes.
type MatrixCanvas struct {
	matrix [][]rune
	width  int
	height int
}

// NewMatrixCanvas creates a new canvas filled with spaces.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	matrix := make([][]rune, height)
	for y := 0; y < height; y++ {
		matrix[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			matrix[y][x] = ' '
		}
	}

	return &MatrixCanvas{
		matrix: matrix,
		width:  width,
		height: height,
	}, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

// Get returns the character at the given position.
// Returns ' ' (space) if position is out of bounds.
func (c *MatrixCanvas) Get(p core.Point) rune {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return ' '
	}
	return c.matrix[p.Y][p.X]
}

// Set places a character at the given position.
func (c *MatrixCanvas) Set(p core.Point, char rune) error {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return ErrOutOfBounds
	}
	c.matrix[p.Y][p.X] = char
	return nil
}

// DrawText writes text starting at p and returns the number of cells used.
// Wide runes take two cells; the second cell is left blank. Text running off
// the right edge is clipped.
func (c *MatrixCanvas) DrawText(p core.Point, text string) int {
	x := p.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if err := c.Set(core.Point{X: x, Y: p.Y}, r); err != nil {
			break
		}
		for i := 1; i < w; i++ {
			c.Set(core.Point{X: x + i, Y: p.Y}, ' ')
		}
		x += w
	}
	return x - p.X
}

// Clear resets every cell to a space.
func (c *MatrixCanvas) Clear() {
	for y := range c.matrix {
		for x := range c.matrix[y] {
			c.matrix[y][x] = ' '
		}
	}
}

// String renders the canvas one line per row with trailing spaces removed.
func (c *MatrixCanvas) String() string {
	var b strings.Builder
	for y, row := range c.matrix {
		b.WriteString(strings.TrimRight(string(row), " "))
		if y < len(c.matrix)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
