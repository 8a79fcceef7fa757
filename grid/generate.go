package grid

import (
	"fmt"
	"gridpath/core"
	"math/rand"
	"strings"
	"time"
)

// DefaultWallPercent is the chance, in percent, that an interior cell becomes a wall.
const DefaultWallPercent = 15

// Options controls random grid generation.
type Options struct {
	WallPercent int
	Rand        *rand.Rand
	Cost        func(p core.Point) int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWallPercent sets the wall probability for interior cells (0..100).
func WithWallPercent(percent int) Option {
	return func(o *Options) { o.WallPercent = percent }
}

// WithRand sets the random source used for wall placement.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed seeds a private random source, giving reproducible grids.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithCost assigns a per-cell entry cost. Cells default to 0.
func WithCost(cost func(p core.Point) int) Option {
	return func(o *Options) { o.Cost = cost }
}

// Generate builds a width×height grid. The outer ring is always wall; every
// interior cell draws a number in 1..100 and becomes a wall when the draw is
// below the wall percentage, otherwise floor.
func Generate(width, height int, opts ...Option) (*Grid, error) {
	options := Options{WallPercent: DefaultWallPercent}
	for _, opt := range opts {
		opt(&options)
	}
	if options.WallPercent < 0 || options.WallPercent > 100 {
		return nil, fmt.Errorf("wall percent %d out of range 0..100", options.WallPercent)
	}
	rng := options.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	edge := core.Bounds{Max: core.Point{X: width, Y: height}}
	typeAt := func(p core.Point) core.NodeType {
		if edge.OnEdge(p) {
			return core.Wall
		}
		if rng.Intn(100)+1 < options.WallPercent {
			return core.Wall
		}
		return core.Floor
	}
	return newGrid(width, height, typeAt, options.Cost)
}

// FromRows builds a grid from glyph rows such as
//
//	XXXXX
//	XS--X
//	X-X-X
//	X--DX
//	XXXXX
//
// Any glyph understood by core.ParseNodeType is accepted ('.' reads as floor).
// S and D designate start and destination. The wall ring is not enforced so
// fixtures can describe open areas; the validation package reports it.
func FromRows(rows []string, opts ...Option) (*Grid, error) {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	cleaned := make([][]rune, 0, len(rows))
	for _, row := range rows {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		cleaned = append(cleaned, []rune(row))
	}
	if len(cleaned) == 0 {
		return nil, ErrInvalidSize
	}
	width := len(cleaned[0])
	types := make([][]core.NodeType, len(cleaned))
	for y, row := range cleaned {
		if len(row) != width {
			return nil, fmt.Errorf("row %d: %w", y, ErrRaggedRows)
		}
		types[y] = make([]core.NodeType, width)
		for x, r := range row {
			t, err := core.ParseNodeType(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			types[y][x] = t
		}
	}

	g, err := newGrid(width, len(types), func(p core.Point) core.NodeType {
		t := types[p.Y][p.X]
		if t == core.Start || t == core.Destination {
			return core.Floor
		}
		return t
	}, options.Cost)
	if err != nil {
		return nil, err
	}

	for y, row := range types {
		for x, t := range row {
			switch t {
			case core.Start:
				g.SetStart(x, y)
			case core.Destination:
				g.SetDestination(x, y)
			}
		}
	}
	return g, nil
}

// ParseMap is FromRows over a single multi-line string.
func ParseMap(s string, opts ...Option) (*Grid, error) {
	return FromRows(strings.Split(s, "\n"), opts...)
}
