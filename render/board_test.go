package render

import (
	"gridpath/canvas"
	"gridpath/grid"
	"strings"
	"testing"
)

func TestDrawBoard(t *testing.T) {
	g, err := grid.ParseMap(`
XXXXX
XS--X
X-X-X
X--DX
XXXXX`)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"  0 1 2 3 4",
		"0 X X X X X",
		"1 X S - - X",
		"2 X - X - X",
		"3 X - - D X",
		"4 X X X X X",
	}, "\n") + "\n"
	if got := DrawBoard(g); got != want {
		t.Errorf("DrawBoard mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDrawBoardWideLabels(t *testing.T) {
	g, err := grid.Generate(11, 3)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(DrawBoard(g), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if want := "  0  1  2  3  4  5  6  7  8  9  10"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if want := "2 X  X  X  X  X  X  X  X  X  X  X"; lines[3] != want {
		t.Errorf("last row = %q, want %q", lines[3], want)
	}
}

func TestNewLayout(t *testing.T) {
	tests := []struct {
		w, h          int
		label, cell   int
		width, height int
	}{
		{5, 5, 1, 1, 11, 6},
		{10, 10, 1, 1, 21, 11},
		{12, 11, 2, 2, 38, 12},
	}
	for _, tt := range tests {
		l := NewLayout(tt.w, tt.h)
		if l.LabelWidth != tt.label || l.CellWidth != tt.cell {
			t.Errorf("NewLayout(%d,%d) = label %d cell %d", tt.w, tt.h, l.LabelWidth, l.CellWidth)
		}
		if w, h := l.Size(); w != tt.width || h != tt.height {
			t.Errorf("NewLayout(%d,%d).Size() = %d,%d, want %d,%d", tt.w, tt.h, w, h, tt.width, tt.height)
		}
	}
}

func TestLegendListsEveryGlyph(t *testing.T) {
	legend := Legend()
	for _, g := range []string{"- :", "X :", "S :", "D :", "* :", "o :"} {
		if !strings.Contains(legend, g) {
			t.Errorf("legend missing %q", g)
		}
	}
}

func TestDrawColoredBoard(t *testing.T) {
	g, err := grid.ParseMap(`
XXXX
XS-X
XXXX`)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := DrawColoredBoard(g, TerminalCapabilities{}), DrawBoard(g); got != want {
		t.Errorf("monochrome board = %q, want plain %q", got, want)
	}

	colored := DrawColoredBoard(g, TerminalCapabilities{SupportsColor: true, ColorDepth: 256})
	if !strings.Contains(colored, canvas.StyleBold+canvas.ColorGreen+"S"+canvas.ColorReset+" -") {
		t.Errorf("start not colored in %q", colored)
	}
	plain := strings.NewReplacer(
		canvas.StyleBold, "", canvas.StyleDim, "", canvas.ColorReset, "",
		canvas.ColorGreen, "", canvas.ColorWhite, "",
	).Replace(colored)
	if plain != DrawBoard(g) {
		t.Errorf("stripped colored board = %q, want %q", plain, DrawBoard(g))
	}
}
