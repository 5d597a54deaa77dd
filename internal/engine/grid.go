package engine

import (
	"cmp"
	"slices"

	"github.com/roach88/rovers/internal/ir"
)

// Grid is the bounded rectangle (0,0)..(maxX,maxY), inclusive, plus the
// set of cells where robots were lost.
//
// Scents only accumulate; MarkScent never removes and is idempotent.
type Grid struct {
	maxX, maxY int
	scents     map[ir.Coordinate]struct{}
}

// NewGrid creates an unscented grid with the given upper-right corner.
func NewGrid(maxX, maxY int) *Grid {
	return &Grid{
		maxX:   maxX,
		maxY:   maxY,
		scents: make(map[ir.Coordinate]struct{}),
	}
}

// Bounds returns the upper-right corner.
func (g *Grid) Bounds() ir.Coordinate {
	return ir.Coordinate{X: g.maxX, Y: g.maxY}
}

// Contains reports whether c lies on the grid.
func (g *Grid) Contains(c ir.Coordinate) bool {
	return c.X >= 0 && c.X <= g.maxX && c.Y >= 0 && c.Y <= g.maxY
}

// HasScent reports whether a robot was lost from c.
func (g *Grid) HasScent(c ir.Coordinate) bool {
	_, ok := g.scents[c]
	return ok
}

// MarkScent records that a robot was lost from c.
// Returns false if c already carried a scent.
func (g *Grid) MarkScent(c ir.Coordinate) bool {
	if g.HasScent(c) {
		return false
	}
	g.scents[c] = struct{}{}
	return true
}

// Scents returns the scented cells ordered by X, then Y.
func (g *Grid) Scents() []ir.Coordinate {
	out := make([]ir.Coordinate, 0, len(g.scents))
	for c := range g.scents {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b ir.Coordinate) int {
		if n := cmp.Compare(a.X, b.X); n != 0 {
			return n
		}
		return cmp.Compare(a.Y, b.Y)
	})
	return out
}
