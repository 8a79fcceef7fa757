package render

import (
	"gridpath/core"
	"gridpath/grid"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Styles maps each node type to its screen style.
type Styles map[core.NodeType]tcell.Style

// DefaultStyles returns the styles for a terminal with the given capabilities.
func DefaultStyles(caps TerminalCapabilities) Styles {
	base := tcell.StyleDefault
	styles := Styles{}
	for _, t := range core.NodeTypes() {
		styles[t] = base
	}
	if !caps.SupportsColor {
		styles[core.Start] = base.Bold(true)
		styles[core.Destination] = base.Bold(true)
		styles[core.PathStep] = base.Reverse(true)
		return styles
	}
	styles[core.Floor] = base.Foreground(tcell.ColorGray)
	styles[core.Wall] = base.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	styles[core.Start] = base.Foreground(tcell.ColorGreen).Bold(true)
	styles[core.Destination] = base.Foreground(tcell.ColorRed).Bold(true)
	styles[core.PathStep] = base.Foreground(tcell.ColorYellow).Bold(true)
	styles[core.Checked] = base.Foreground(tcell.ColorTeal)
	return styles
}

// ScreenRenderer draws labelled boards onto a tcell screen using the same
// layout as DrawBoard.
type ScreenRenderer struct {
	screen tcell.Screen
	styles Styles
	origin core.Point
}

// NewScreenRenderer creates a renderer drawing at the top-left of the screen.
func NewScreenRenderer(screen tcell.Screen, styles Styles) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, styles: styles}
}

// SetOrigin moves the board's top-left corner.
func (r *ScreenRenderer) SetOrigin(p core.Point) {
	r.origin = p
}

// Draw paints the whole board. It does not call Show.
func (r *ScreenRenderer) Draw(g *grid.Grid) {
	layout := NewLayout(g.Width(), g.Height())
	label := tcell.StyleDefault.Dim(true)

	for x := 0; x < g.Width(); x++ {
		r.text(core.Point{X: layout.CellOrigin(x, 0).X, Y: 0}, strconv.Itoa(x), label)
	}
	for y, row := range g.Rows() {
		s := strconv.Itoa(y)
		r.text(core.Point{X: layout.LabelWidth - len(s), Y: y + 1}, s, label)
		for x, typ := range row {
			r.DrawCell(layout, core.Point{X: x, Y: y}, typ)
		}
	}
}

// DrawCell paints one cell with the style of typ.
func (r *ScreenRenderer) DrawCell(layout Layout, cell core.Point, typ core.NodeType) {
	p := layout.CellOrigin(cell.X, cell.Y)
	r.screen.SetContent(r.origin.X+p.X, r.origin.Y+p.Y, typ.Glyph(), nil, r.styles[typ])
}

// DrawStatus writes a line of text below the board.
func (r *ScreenRenderer) DrawStatus(layout Layout, line int, text string) {
	_, h := layout.Size()
	r.text(core.Point{X: 0, Y: h + 1 + line}, text, tcell.StyleDefault)
}

func (r *ScreenRenderer) text(p core.Point, s string, style tcell.Style) {
	x := r.origin.X + p.X
	for _, ch := range s {
		r.screen.SetContent(x, r.origin.Y+p.Y, ch, nil, style)
		x++
	}
}
