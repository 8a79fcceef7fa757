package grid

import "gridpath/core"

// Node is one cell of a Grid.
//
// Position and Cost are fixed when the grid is built. Type changes over the
// node's life (generation, designation, post-search marking). The neighbour
// list is computed once every node exists and never changes afterwards.
type Node struct {
	Position   core.Point
	Type       core.NodeType
	Cost       int
	neighbours []core.Point
}

// Neighbours returns the in-bounds 4-connected cells next to the node,
// walls included. Callers must not modify the returned slice.
func (n Node) Neighbours() []core.Point {
	return n.neighbours
}

// String returns the node's glyph.
func (n Node) String() string {
	return string(n.Type.Glyph())
}
