package export

import (
	"fmt"
	"gridpath/grid"
	"gridpath/pathfinding"
	"gridpath/render"
	"strings"
)

// ASCIIExporter exports the labelled board followed by a one-line summary
type ASCIIExporter struct {
	color bool
}

// NewASCIIExporter creates a new ASCII exporter
func NewASCIIExporter() *ASCIIExporter {
	return &ASCIIExporter{}
}

// NewANSIExporter creates an exporter that colors the board with ANSI codes
func NewANSIExporter() *ASCIIExporter {
	return &ASCIIExporter{color: true}
}

// Export renders the board and reports the outcome
func (e *ASCIIExporter) Export(g *grid.Grid, res pathfinding.Result) (string, error) {
	if g == nil {
		return "", fmt.Errorf("grid is nil")
	}

	var b strings.Builder
	if e.color {
		b.WriteString(render.DrawColoredBoard(g, render.TerminalCapabilities{Name: "ansi", SupportsColor: true, ColorDepth: 8}))
	} else {
		b.WriteString(render.DrawBoard(g))
	}
	b.WriteString("\n")
	b.WriteString(Summary(res))
	b.WriteString("\n")
	return b.String(), nil
}

// Summary describes a search result in one line.
func Summary(res pathfinding.Result) string {
	switch {
	case !res.Found:
		return "No path found."
	case res.Path.IsEmpty():
		return "Start and destination are the same cell."
	}
	return fmt.Sprintf("%s (%d checked)", pathfinding.PathToString(res.Path), len(res.Checked))
}

// GetFileExtension returns the recommended file extension
func (e *ASCIIExporter) GetFileExtension() string {
	if e.color {
		return ".ans"
	}
	return ".txt"
}

// GetFormatName returns the format name
func (e *ASCIIExporter) GetFormatName() string {
	if e.color {
		return "ANSI colored board"
	}
	return "ASCII board"
}
