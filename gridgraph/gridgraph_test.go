package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph, IsValid and IsPassable Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"NilRows", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 1}, {1}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 0}}
	gg, err := gridgraph.From2D(grid)
	require.NoError(t, err)

	grid[0][0] = 0
	assert.True(t, gg.IsPassable(gridgraph.Cell{Row: 0, Col: 0}))
	assert.Equal(t, 2, gg.Rows)
	assert.Equal(t, 2, gg.Cols)
	assert.Equal(t, 4, gg.Size())
}

// TestIsValid checks bounds on a 2×3 grid.
func TestIsValid(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	for _, c := range []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, gg.IsValid(c), "IsValid%v", c)
	}
	for _, c := range []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, gg.IsValid(c), "IsValid%v", c)
	}
}

// TestIsPassable_Threshold checks that PassableThreshold drives occupancy.
func TestIsPassable_Threshold(t *testing.T) {
	grid := [][]int{{0, 1, 2, 3}}

	gg, err := gridgraph.From2D(grid)
	require.NoError(t, err)
	assert.False(t, gg.IsPassable(gridgraph.Cell{Row: 0, Col: 0}))
	assert.True(t, gg.IsPassable(gridgraph.Cell{Row: 0, Col: 1}))

	gg2, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{PassableThreshold: 2})
	require.NoError(t, err)
	assert.False(t, gg2.IsPassable(gridgraph.Cell{Row: 0, Col: 1}))
	assert.True(t, gg2.IsPassable(gridgraph.Cell{Row: 0, Col: 2}))

	assert.False(t, gg.Open(gridgraph.Cell{Row: 0, Col: 4}), "out of bounds is never open")
}

//----------------------------------------------------------------------------//
// Neighbors and index mapping Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed +row, +col, −col, −row order.
func TestNeighbors_Order(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	got := gg.Neighbors(gridgraph.Cell{Row: 1, Col: 1})
	want := []gridgraph.Cell{{2, 1}, {1, 2}, {1, 0}, {0, 1}}
	assert.Equal(t, want, got)

	// Corner keeps the relative order of in-bounds neighbors.
	got = gg.Neighbors(gridgraph.Cell{Row: 0, Col: 2})
	assert.Equal(t, []gridgraph.Cell{{1, 2}, {0, 1}}, got)
}

// TestIndexCoordinate_RoundTrip checks the row-major mapping on a non-square grid.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, gg.Index(gridgraph.Cell{Row: 1, Col: 2}))
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 3}, gg.Coordinate(7))
	for i := 0; i < gg.Size(); i++ {
		assert.Equal(t, i, gg.Index(gg.Coordinate(i)))
	}
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "(3, 6)", gridgraph.Cell{Row: 3, Col: 6}.String())
}
