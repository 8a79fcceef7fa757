// Package validation checks grids and paths against the rules a board must obey.
package validation

import (
	"fmt"
	"gridpath/core"
	"gridpath/geometry"
	"gridpath/grid"
)

// ValidationError represents a validation error with location information.
type ValidationError struct {
	X, Y    int
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("(%d,%d): %s", e.X, e.Y, e.Message)
}

// GridValidator checks a grid's structural invariants.
type GridValidator struct {
	errors []ValidationError
	// Options
	requireBorder bool // Outer ring must be wall
}

// NewGridValidator creates a validator with default settings.
func NewGridValidator() *GridValidator {
	return &GridValidator{requireBorder: true}
}

// SetRequireBorder enables or disables the wall ring check. Hand-written
// fixtures sometimes leave the edge open.
func (v *GridValidator) SetRequireBorder(require bool) {
	v.requireBorder = require
}

// Validate checks the grid and returns every problem found.
func (v *GridValidator) Validate(g *grid.Grid) []ValidationError {
	v.errors = nil
	bounds := g.Bounds()
	rows := g.Rows()

	var starts, dests []core.Point
	for y, row := range rows {
		for x, typ := range row {
			p := core.Point{X: x, Y: y}
			if v.requireBorder && bounds.OnEdge(p) && typ != core.Wall {
				v.add(p, fmt.Sprintf("border cell is %s, want wall", typ))
			}
			switch typ {
			case core.Start:
				starts = append(starts, p)
			case core.Destination:
				dests = append(dests, p)
			}
			v.checkNeighbours(g, p)
		}
	}

	v.checkDesignation(starts, core.Start, g.Start)
	v.checkDesignation(dests, core.Destination, g.Destination)
	return v.errors
}

func (v *GridValidator) checkNeighbours(g *grid.Grid, p core.Point) {
	for _, q := range g.Neighbours(p) {
		if !g.IsWithinBounds(q.X, q.Y) {
			v.add(p, fmt.Sprintf("neighbour %v out of bounds", q))
		}
		if !geometry.Adjacent(p, q) {
			v.add(p, fmt.Sprintf("neighbour %v is not 4-connected", q))
		}
	}
}

func (v *GridValidator) checkDesignation(found []core.Point, typ core.NodeType, designated func() (core.Point, bool)) {
	if len(found) > 1 {
		for _, p := range found {
			v.add(p, fmt.Sprintf("more than one %s cell", typ))
		}
	}
	want, ok := designated()
	if !ok {
		if len(found) > 0 {
			v.add(found[0], fmt.Sprintf("%s cell without designation", typ))
		}
		return
	}
	if len(found) == 0 {
		v.add(want, fmt.Sprintf("designated %s is not marked", typ))
		return
	}
	if found[0] != want {
		v.add(found[0], fmt.Sprintf("%s marked at %v but designated at %v", typ, found[0], want))
	}
}

func (v *GridValidator) add(p core.Point, msg string) {
	v.errors = append(v.errors, ValidationError{X: p.X, Y: p.Y, Message: msg})
}

// ValidatePath checks a path returned by a search: it must start at the
// destination, move one 4-connected step at a time, end next to the start
// and never enter a wall or the start itself. An empty path is valid.
func ValidatePath(g *grid.Grid, path core.Path) []ValidationError {
	var errs []ValidationError
	if path.IsEmpty() {
		return nil
	}
	add := func(p core.Point, msg string) {
		errs = append(errs, ValidationError{X: p.X, Y: p.Y, Message: msg})
	}

	start, hasStart := g.Start()
	if dest, ok := g.Destination(); ok && path.Points[0] != dest {
		add(path.Points[0], fmt.Sprintf("path begins here, not at destination %v", dest))
	}
	for i, p := range path.Points {
		if !g.IsWithinBounds(p.X, p.Y) {
			add(p, "path leaves the grid")
			continue
		}
		if g.TypeAt(p) == core.Wall {
			add(p, "path enters a wall")
		}
		if hasStart && p == start {
			add(p, "path includes the start")
		}
		if i > 0 && !geometry.Adjacent(path.Points[i-1], p) {
			add(p, fmt.Sprintf("step from %v is not 4-connected", path.Points[i-1]))
		}
	}
	if last := path.Points[len(path.Points)-1]; hasStart && !geometry.Adjacent(last, start) {
		add(last, fmt.Sprintf("path ends away from start %v", start))
	}
	return errs
}
