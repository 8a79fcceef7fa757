// Package grid owns the traversable surface a path is searched on.
//
// A Grid is a width×height matrix of Nodes with a wall ring around the edge,
// optional start and destination designations, and precomputed 4-connected
// adjacency. All exported methods are safe for concurrent use; mutations are
// serialized behind a read/write lock.
package grid

import (
	"encoding/binary"
	"errors"
	"gridpath/core"
	"hash/fnv"
	"sync"
)

// Common errors
var (
	ErrInvalidSize = errors.New("invalid grid size")
	ErrRaggedRows  = errors.New("grid rows have different lengths")
)

// neighbourOrder is the order adjacency is recorded in: the scan runs x-1..x+1
// and, inside that, y-1..y+1, so West comes first and East last.
var neighbourOrder = []core.Direction{core.West, core.North, core.South, core.East}

// Grid owns every Node. Start and destination are held as coordinates.
type Grid struct {
	mu     sync.RWMutex
	width  int
	height int
	nodes  [][]*Node // indexed [y][x]

	start          core.Point
	hasStart       bool
	destination    core.Point
	hasDestination bool
}

// newGrid allocates the node matrix through typeAt/costAt and then links
// neighbours. Linking happens only after every node exists.
func newGrid(width, height int, typeAt func(p core.Point) core.NodeType, costAt func(p core.Point) int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidSize
	}

	g := &Grid{width: width, height: height}
	g.nodes = make([][]*Node, height)
	for y := 0; y < height; y++ {
		g.nodes[y] = make([]*Node, width)
		for x := 0; x < width; x++ {
			p := core.Point{X: x, Y: y}
			n := &Node{Position: p, Type: typeAt(p)}
			if costAt != nil {
				n.Cost = costAt(p)
			}
			g.nodes[y][x] = n
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.linkNeighbours(g.nodes[y][x])
		}
	}
	return g, nil
}

func (g *Grid) linkNeighbours(n *Node) {
	n.neighbours = make([]core.Point, 0, len(neighbourOrder))
	for _, d := range neighbourOrder {
		p := n.Position.Add(d.Delta())
		if g.bounds().Contains(p) {
			n.neighbours = append(n.neighbours, p)
		}
	}
}

func (g *Grid) bounds() core.Bounds {
	return core.Bounds{Max: core.Point{X: g.width, Y: g.height}}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the grid's extent.
func (g *Grid) Bounds() core.Bounds { return g.bounds() }

// IsWithinBounds checks if the given coordinates lie on the grid.
func (g *Grid) IsWithinBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsAvailable checks that the coordinates are on the grid and the cell is floor.
// Start, destination and walls are never available.
func (g *Grid) IsAvailable(x, y int) bool {
	if !g.IsWithinBounds(x, y) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[y][x].Type == core.Floor
}

// Node returns a copy of the node at p. The second result is false when p is off the grid.
func (g *Grid) Node(p core.Point) (Node, bool) {
	if !g.IsWithinBounds(p.X, p.Y) {
		return Node{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return *g.nodes[p.Y][p.X], true
}

// TypeAt returns the type of the cell at p. Off-grid cells read as walls.
func (g *Grid) TypeAt(p core.Point) core.NodeType {
	if !g.IsWithinBounds(p.X, p.Y) {
		return core.Wall
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[p.Y][p.X].Type
}

// Neighbours returns the adjacency list of the cell at p, or nil off the grid.
func (g *Grid) Neighbours(p core.Point) []core.Point {
	if !g.IsWithinBounds(p.X, p.Y) {
		return nil
	}
	// Adjacency is immutable after construction; no lock needed.
	return g.nodes[p.Y][p.X].neighbours
}

// Start returns the designated start cell, if any.
func (g *Grid) Start() (core.Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.start, g.hasStart
}

// Destination returns the designated destination cell, if any.
func (g *Grid) Destination() (core.Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.destination, g.hasDestination
}

// SetStart marks the cell as the start.
//
// The caller must have checked IsAvailable first; the cell is not re-validated
// and designating a wall or an already designated cell corrupts the grid.
// A previously designated start is turned back into floor.
func (g *Grid) SetStart(x, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if old := g.nodes[g.start.Y][g.start.X]; g.hasStart && old.Type == core.Start {
		old.Type = core.Floor
	}
	g.nodes[y][x].Type = core.Start
	g.start = core.Point{X: x, Y: y}
	g.hasStart = true
}

// SetDestination marks the cell as the destination. Same contract as SetStart.
func (g *Grid) SetDestination(x, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if old := g.nodes[g.destination.Y][g.destination.X]; g.hasDestination && old.Type == core.Destination {
		old.Type = core.Floor
	}
	g.nodes[y][x].Type = core.Destination
	g.destination = core.Point{X: x, Y: y}
	g.hasDestination = true
}

// MarkPath sets every path cell other than start and destination to PathStep.
func (g *Grid) MarkPath(path core.Path) {
	g.mark(path.Points, core.PathStep)
}

// MarkChecked sets every given cell other than start and destination to Checked.
func (g *Grid) MarkChecked(points []core.Point) {
	g.mark(points, core.Checked)
}

func (g *Grid) mark(points []core.Point, typ core.NodeType) {
	if len(points) == 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, p := range points {
		if !g.IsWithinBounds(p.X, p.Y) || g.isDesignated(p) {
			continue
		}
		g.nodes[p.Y][p.X].Type = typ
	}
}

func (g *Grid) isDesignated(p core.Point) bool {
	return (g.hasStart && p == g.start) || (g.hasDestination && p == g.destination)
}

// Reset turns path and checked cells back into floor so the grid can be
// searched and drawn again. Walls and designations are kept.
func (g *Grid) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, row := range g.nodes {
		for _, n := range row {
			if n.Type == core.PathStep || n.Type == core.Checked {
				n.Type = core.Floor
			}
		}
	}
}

// Rows returns a snapshot of every cell type, indexed [y][x].
func (g *Grid) Rows() [][]core.NodeType {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rows := make([][]core.NodeType, g.height)
	for y, row := range g.nodes {
		rows[y] = make([]core.NodeType, g.width)
		for x, n := range row {
			rows[y][x] = n.Type
		}
	}
	return rows
}

// Glyph returns the display character of the cell at (x, y), or ' ' off the grid.
func (g *Grid) Glyph(x, y int) rune {
	if !g.IsWithinBounds(x, y) {
		return ' '
	}
	return g.TypeAt(core.Point{X: x, Y: y}).Glyph()
}

// Strings returns one glyph string per row.
func (g *Grid) Strings() []string {
	rows := g.Rows()
	out := make([]string, len(rows))
	for y, row := range rows {
		runes := make([]rune, len(row))
		for x, t := range row {
			runes[x] = t.Glyph()
		}
		out[y] = string(runes)
	}
	return out
}

// AvailableCells lists every floor cell in row-major order.
func (g *Grid) AvailableCells() []core.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var cells []core.Point
	for _, row := range g.nodes {
		for _, n := range row {
			if n.Type == core.Floor {
				cells = append(cells, n.Position)
			}
		}
	}
	return cells
}

// Fingerprint hashes what a search can observe: the size, which cells are
// traversable and their costs. Marks and designations do not change it.
func (g *Grid) Fingerprint() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	put(g.width)
	put(g.height)
	for _, row := range g.nodes {
		for _, n := range row {
			if n.Type.Traversable() {
				put(n.Cost)
			} else {
				put(-1)
			}
		}
	}
	return h.Sum64()
}
