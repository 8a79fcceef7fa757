// Package export turns a searched grid into text formats for files and other tools.
package export

import (
	"fmt"
	"gridpath/core"
	"gridpath/grid"
	"gridpath/pathfinding"
)

// Format represents an export format
type Format string

const (
	// FormatASCII exports the labelled board (default)
	FormatASCII Format = "ascii"
	// FormatANSI exports the labelled board with terminal colors
	FormatANSI Format = "ansi"
	// FormatJSON exports a machine-readable document
	FormatJSON Format = "json"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a searched grid to the target format. The grid is
	// expected to carry its path and checked marks already.
	Export(g *grid.Grid, res pathfinding.Result) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatASCII:
		return NewASCIIExporter(), nil
	case FormatANSI:
		return NewANSIExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "ascii", "text", "txt":
		return FormatASCII, nil
	case "ansi", "color":
		return FormatANSI, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{FormatASCII, FormatANSI, FormatJSON}
}

// Document is the serializable form of a searched grid.
type Document struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Start       *core.Point  `json:"start,omitempty"`
	Destination *core.Point  `json:"destination,omitempty"`
	Found       bool         `json:"found"`
	Path        []core.Point `json:"path"`
	Cost        int          `json:"cost"`
	Checked     []core.Point `json:"checked"`
	Rows        []string     `json:"rows"`
}

// NewDocument captures the grid and result. Path points are listed from the
// step after the start to the destination.
func NewDocument(g *grid.Grid, res pathfinding.Result) Document {
	doc := Document{
		Width:   g.Width(),
		Height:  g.Height(),
		Found:   res.Found,
		Path:    res.Path.Reversed(),
		Cost:    res.Path.Cost,
		Checked: res.Checked,
		Rows:    g.Strings(),
	}
	if doc.Checked == nil {
		doc.Checked = []core.Point{}
	}
	if p, ok := g.Start(); ok {
		doc.Start = &p
	}
	if p, ok := g.Destination(); ok {
		doc.Destination = &p
	}
	return doc
}
