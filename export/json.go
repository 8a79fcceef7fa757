package export

import (
	"encoding/json"
	"gridpath/grid"
	"gridpath/pathfinding"
)

// JSONExporter exports searched grids as JSON documents
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts the grid and result to indented JSON
func (e *JSONExporter) Export(g *grid.Grid, res pathfinding.Result) (string, error) {
	data, err := json.MarshalIndent(NewDocument(g, res), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
