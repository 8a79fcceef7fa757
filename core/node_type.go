package core

import "fmt"

// NodeType is the role a grid cell currently plays. A cell has exactly one type
// at a time; the type changes during generation, designation and after a search.
type NodeType int

const (
	Floor NodeType = iota
	Wall
	Start
	Destination
	PathStep
	Checked
)

var glyphs = [...]rune{
	Floor:       '-',
	Wall:        'X',
	Start:       'S',
	Destination: 'D',
	PathStep:    '*',
	Checked:     'o',
}

var names = [...]string{
	Floor:       "floor",
	Wall:        "wall",
	Start:       "start",
	Destination: "destination",
	PathStep:    "path",
	Checked:     "checked",
}

// NodeTypes lists every type in declaration order.
func NodeTypes() []NodeType {
	return []NodeType{Floor, Wall, Start, Destination, PathStep, Checked}
}

// Glyph returns the single character used to draw the type.
func (t NodeType) Glyph() rune {
	if t < 0 || int(t) >= len(glyphs) {
		return '?'
	}
	return glyphs[t]
}

// String returns the lower-case name of the type.
func (t NodeType) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
	return names[t]
}

// Traversable reports whether a search may enter a cell of this type.
func (t NodeType) Traversable() bool {
	return t != Wall
}

// ParseNodeType maps a glyph back to its type.
func ParseNodeType(r rune) (NodeType, error) {
	for i, g := range glyphs {
		if g == r {
			return NodeType(i), nil
		}
	}
	// '.' is accepted as floor so fixtures can be written the way obstacle maps are.
	if r == '.' {
		return Floor, nil
	}
	return 0, fmt.Errorf("unknown node glyph %q", r)
}
