package geometry

import (
	"gridpath/core"
	"testing"
)

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		a, b core.Point
		want int
	}{
		{core.Point{X: 0, Y: 0}, core.Point{X: 0, Y: 0}, 0},
		{core.Point{X: 1, Y: 1}, core.Point{X: 3, Y: 3}, 4},
		{core.Point{X: 3, Y: 3}, core.Point{X: 1, Y: 1}, 4},
		{core.Point{X: -2, Y: 5}, core.Point{X: 2, Y: 1}, 8},
	}
	for _, tt := range tests {
		if got := ManhattanDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("ManhattanDistance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAdjacentAndClamp(t *testing.T) {
	if !Adjacent(core.Point{X: 1, Y: 1}, core.Point{X: 1, Y: 2}) {
		t.Error("vertical neighbours should be adjacent")
	}
	if Adjacent(core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 2}) {
		t.Error("diagonal cells are not adjacent")
	}
	if Clamp(150, 0, 100) != 100 || Clamp(-3, 0, 100) != 0 || Clamp(15, 0, 100) != 15 {
		t.Error("Clamp returned a value outside the range")
	}
}
