package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/rovers/internal/ir"
)

func TestGrid_Contains(t *testing.T) {
	g := NewGrid(5, 3)

	inside := []ir.Coordinate{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 0, Y: 3}, {X: 5, Y: 0}, {X: 2, Y: 2}}
	for _, c := range inside {
		assert.True(t, g.Contains(c), "%v should be on the grid", c)
	}

	outside := []ir.Coordinate{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 6, Y: 3}, {X: 5, Y: 4}}
	for _, c := range outside {
		assert.False(t, g.Contains(c), "%v should be off the grid", c)
	}
}

func TestGrid_SingleCell(t *testing.T) {
	g := NewGrid(0, 0)
	assert.True(t, g.Contains(ir.Coordinate{}))
	for _, b := range ir.Bearings {
		assert.False(t, g.Contains(ir.Coordinate{}.Step(b, 1)))
	}
}

func TestGrid_Bounds(t *testing.T) {
	assert.Equal(t, ir.Coordinate{X: 5, Y: 3}, NewGrid(5, 3).Bounds())
}

func TestGrid_MarkScentIdempotent(t *testing.T) {
	g := NewGrid(5, 3)
	c := ir.Coordinate{X: 3, Y: 3}

	assert.False(t, g.HasScent(c))
	assert.True(t, g.MarkScent(c), "first mark adds the scent")
	assert.True(t, g.HasScent(c))
	assert.False(t, g.MarkScent(c), "second mark is a no-op")
	assert.Equal(t, []ir.Coordinate{c}, g.Scents())
}

func TestGrid_ScentsSorted(t *testing.T) {
	g := NewGrid(5, 5)
	g.MarkScent(ir.Coordinate{X: 3, Y: 0})
	g.MarkScent(ir.Coordinate{X: 0, Y: 5})
	g.MarkScent(ir.Coordinate{X: 0, Y: 2})

	assert.Equal(t, []ir.Coordinate{{X: 0, Y: 2}, {X: 0, Y: 5}, {X: 3, Y: 0}}, g.Scents())
}

func TestGrid_ScentsEmpty(t *testing.T) {
	s := NewGrid(1, 1).Scents()
	assert.NotNil(t, s)
	assert.Empty(t, s)
}
