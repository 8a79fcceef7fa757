// Package render draws grids for people: as labelled text boards and on tcell screens.
package render

import (
	"gridpath/canvas"
	"gridpath/core"
	"gridpath/grid"
	"strconv"
)

// Layout describes where each part of a labelled board goes. Row labels sit
// in a left gutter, column labels across the top, cells are separated by one
// space and padded to the widest column label.
type Layout struct {
	LabelWidth int // width of the row label gutter, without the trailing space
	CellWidth  int // width of a single cell
	Columns    int
	Rows       int
}

// NewLayout computes the layout for a grid of the given size.
func NewLayout(width, height int) Layout {
	return Layout{
		LabelWidth: len(strconv.Itoa(max(height-1, 0))),
		CellWidth:  len(strconv.Itoa(max(width-1, 0))),
		Columns:    width,
		Rows:       height,
	}
}

// Size returns the text size of the whole board including labels.
func (l Layout) Size() (width, height int) {
	return l.LabelWidth + 1 + l.Columns*(l.CellWidth+1) - 1, l.Rows + 1
}

// CellOrigin returns where the glyph of cell (x, y) is drawn.
func (l Layout) CellOrigin(x, y int) core.Point {
	return core.Point{X: l.LabelWidth + 1 + x*(l.CellWidth+1), Y: y + 1}
}

// DrawBoard renders the grid as text: a header row with column indexes and
// every row prefixed with its index.
//
//	  0 1 2 3 4
//	0 X X X X X
//	1 X S - - X
func DrawBoard(g *grid.Grid) string {
	layout := NewLayout(g.Width(), g.Height())
	w, h := layout.Size()
	c, err := canvas.NewMatrixCanvas(w, h)
	if err != nil {
		return ""
	}
	drawBoard(c, g, layout, func(p core.Point, typ core.NodeType) {
		c.Set(p, typ.Glyph())
	})
	return c.String() + "\n"
}

// GlyphColors names the ANSI color of each node type on a colored board.
var GlyphColors = map[core.NodeType]string{
	core.Wall:        "dim+white",
	core.Start:       "bold+green",
	core.Destination: "bold+red",
	core.PathStep:    "bold+yellow",
	core.Checked:     "cyan",
}

// DrawColoredBoard is DrawBoard with ANSI colors per node type. Without color
// support it returns the plain board.
func DrawColoredBoard(g *grid.Grid, caps TerminalCapabilities) string {
	if !caps.SupportsColor {
		return DrawBoard(g)
	}
	layout := NewLayout(g.Width(), g.Height())
	w, h := layout.Size()
	c, err := canvas.NewColoredMatrixCanvas(w, h)
	if err != nil {
		return ""
	}
	drawBoard(c.MatrixCanvas, g, layout, func(p core.Point, typ core.NodeType) {
		c.SetWithColor(p, typ.Glyph(), GlyphColors[typ])
	})
	return c.ColoredString() + "\n"
}

func drawBoard(c *canvas.MatrixCanvas, g *grid.Grid, layout Layout, cell func(core.Point, core.NodeType)) {
	for x := 0; x < g.Width(); x++ {
		origin := layout.CellOrigin(x, 0)
		c.DrawText(core.Point{X: origin.X, Y: 0}, strconv.Itoa(x))
	}
	for y, row := range g.Rows() {
		label := strconv.Itoa(y)
		c.DrawText(core.Point{X: layout.LabelWidth - len(label), Y: y + 1}, label)
		for x, typ := range row {
			cell(layout.CellOrigin(x, y), typ)
		}
	}
}

// Legend describes every glyph, one per line.
func Legend() string {
	return "Symbol Description\n" +
		"- : floor node.\n" +
		"X : wall node.\n" +
		"S : starting node.\n" +
		"D : destination node.\n" +
		"* : path node.\n" +
		"o : checked node.\n"
}
