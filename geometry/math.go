// Package geometry holds the small integer helpers used by grid search.
package geometry

import "gridpath/core"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(a, b core.Point) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Adjacent reports whether two points are 4-connected neighbours.
func Adjacent(a, b core.Point) bool {
	return ManhattanDistance(a, b) == 1
}
