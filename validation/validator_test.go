package validation

import (
	"context"
	"gridpath/core"
	"gridpath/grid"
	"gridpath/pathfinding"
	"strings"
	"testing"
)

func TestValidateGeneratedGrids(t *testing.T) {
	v := NewGridValidator()
	for seed := int64(0); seed < 25; seed++ {
		g, err := grid.Generate(12, 8, grid.WithSeed(seed))
		if err != nil {
			t.Fatal(err)
		}
		if errs := v.Validate(g); len(errs) != 0 {
			t.Errorf("seed %d: unexpected errors %v", seed, errs)
		}
	}
}

func TestValidateGridProblems(t *testing.T) {
	tests := []struct {
		name      string
		grid      string
		border    bool
		wantCount int
		wantMsg   string
	}{
		{
			name: "valid",
			grid: `
XXXX
XS-X
X-DX
XXXX`,
			border:    true,
			wantCount: 0,
		},
		{
			name: "open border",
			grid: `
XX-X
XS-X
X-DX
XXXX`,
			border:    true,
			wantCount: 1,
			wantMsg:   "border cell is floor",
		},
		{
			name: "open border allowed",
			grid: `
----
-S--
--D-
----`,
			border:    false,
			wantCount: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grid.ParseMap(tt.grid)
			if err != nil {
				t.Fatal(err)
			}
			v := NewGridValidator()
			v.SetRequireBorder(tt.border)
			errs := v.Validate(g)
			if len(errs) != tt.wantCount {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, tt.wantCount)
			}
			if tt.wantMsg != "" && !strings.Contains(errs[0].Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidatePathFromSearch(t *testing.T) {
	g, err := grid.ParseMap(`
XXXXXXX
XS----X
X-XXX-X
X----DX
XXXXXXX`)
	if err != nil {
		t.Fatal(err)
	}
	path, err := pathfinding.CalculatePath(context.Background(), g)
	if err != nil {
		t.Fatal(err)
	}
	if errs := ValidatePath(g, path); len(errs) != 0 {
		t.Errorf("search produced an invalid path: %v", errs)
	}
	if errs := ValidatePath(g, core.Path{}); errs != nil {
		t.Errorf("empty path should be valid, got %v", errs)
	}
}

func TestValidatePathProblems(t *testing.T) {
	g, err := grid.ParseMap(`
XXXXX
XS--X
X-X-X
X--DX
XXXXX`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		points  []core.Point
		wantMsg string
	}{
		{"wrong first point", []core.Point{{X: 3, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 1}}, "not at destination"},
		{"through wall", []core.Point{{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 1}}, "enters a wall"},
		{"gap", []core.Point{{X: 3, Y: 3}, {X: 3, Y: 1}, {X: 2, Y: 1}}, "not 4-connected"},
		{"includes start", []core.Point{{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}, "includes the start"},
		{"ends far", []core.Point{{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}}, "ends away from start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePath(g, core.Path{Points: tt.points})
			found := false
			for _, e := range errs {
				if strings.Contains(e.Message, tt.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error containing %q, got %v", tt.wantMsg, errs)
			}
		})
	}
}
