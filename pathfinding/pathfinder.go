// Package pathfinding finds routes between the start and destination of a grid.
//
// The search is A* over 4-connected cells with a Manhattan heuristic. By
// default the cost-from-start of a cell is estimated as the Manhattan distance
// from the start to the cell being expanded plus the entered cell's cost,
// rather than accumulated along the parent chain; this makes the search
// heuristic-driven and keeps the routes of the classic console tool.
// WithAccumulatedCost switches to textbook A*.
//
// Open-set ties are broken by insertion order: among nodes with equal f the
// one that entered the frontier first is expanded first.
package pathfinding

import (
	"context"
	"errors"
	"fmt"
	"gridpath/core"
	"gridpath/geometry"
	"gridpath/grid"
	"strings"
)

// Common errors
var (
	ErrNoStart       = errors.New("grid has no start designated")
	ErrNoDestination = errors.New("grid has no destination designated")
	ErrNodeLimit     = errors.New("pathfinding exceeded node limit")
)

// Result contains the outcome of a search.
type Result struct {
	Path     core.Path    // destination first, start excluded
	Checked  []core.Point // closed cells other than start and destination, in closing order
	Expanded []core.Point // every closed cell in closing order, start first
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	AccumulatedCost bool
	MaxNodes        int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithAccumulatedCost makes g the summed step cost along the parent chain.
func WithAccumulatedCost() Option {
	return func(o *Options) { o.AccumulatedCost = true }
}

// WithMaxNodes caps the number of expansions. Zero means no limit.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// PathFinder runs searches over grids. It holds configuration only and is
// safe to share between goroutines.
type PathFinder struct {
	accumulated bool
	maxNodes    int
}

// NewPathFinder creates a path finder with the given options.
func NewPathFinder(opts ...Option) *PathFinder {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return &PathFinder{accumulated: o.AccumulatedCost, maxNodes: o.MaxNodes}
}

// Search runs one search from the grid's start to its destination. The grid
// is only read, one locked cell access at a time, so callers must not mutate
// it while a search runs. A missing path is not an error: Found is false and
// Path empty.
func (f *PathFinder) Search(ctx context.Context, g *grid.Grid) (Result, error) {
	start, ok := g.Start()
	if !ok {
		return Result{}, ErrNoStart
	}
	dest, ok := g.Destination()
	if !ok {
		return Result{}, ErrNoDestination
	}
	return newSearch(f, g, start, dest).run(ctx)
}

// CalculatePath searches the grid, marks every checked cell on it and returns
// the path. The path is empty when no route exists or start equals destination.
func (f *PathFinder) CalculatePath(ctx context.Context, g *grid.Grid) (core.Path, error) {
	res, err := f.Search(ctx, g)
	if err != nil {
		return core.Path{}, err
	}
	g.MarkChecked(res.Checked)
	return res.Path, nil
}

// CalculatePath runs the default path finder.
func CalculatePath(ctx context.Context, g *grid.Grid) (core.Path, error) {
	return NewPathFinder().CalculatePath(ctx, g)
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(p1, p2 core.Point) int {
	return geometry.ManhattanDistance(p1, p2)
}

// PathToString converts a path to a string representation for debugging.
func PathToString(path core.Path) string {
	if path.IsEmpty() {
		return "empty path"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Path (cost=%d): ", path.Cost)
	for i, p := range path.Points {
		if i > 0 {
			b.WriteString(" <- ")
		}
		b.WriteString(p.String())
	}
	return b.String()
}
