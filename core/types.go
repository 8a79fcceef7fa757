// Package core contains the fundamental types shared by the grid, the path finder and the renderers.
package core

import "fmt"

// Point represents a cell coordinate on a grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the point shifted by the given delta.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction represents a cardinal direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the one-cell offset for the direction. Y grows downward.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	case West:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Path represents a route found on a grid.
//
// Points run from the destination back toward the start; the start itself is
// never included. An empty path means no route exists (or start == destination).
type Path struct {
	Points []Point
	Cost   int // 1 + node cost for every entered cell
}

// Length returns the number of points in the path.
func (p Path) Length() int {
	return len(p.Points)
}

// IsEmpty returns true if the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// Contains reports whether the point is part of the path.
func (p Path) Contains(pt Point) bool {
	for _, q := range p.Points {
		if q == pt {
			return true
		}
	}
	return false
}

// Reversed returns the points in start-to-destination order.
func (p Path) Reversed() []Point {
	out := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		out[len(p.Points)-1-i] = pt
	}
	return out
}

// Bounds represents a rectangular area. Max is exclusive.
type Bounds struct {
	Min, Max Point
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// OnEdge reports whether the point lies on the outermost ring of the bounds.
func (b Bounds) OnEdge(p Point) bool {
	if !b.Contains(p) {
		return false
	}
	return p.X == b.Min.X || p.Y == b.Min.Y || p.X == b.Max.X-1 || p.Y == b.Max.Y-1
}
