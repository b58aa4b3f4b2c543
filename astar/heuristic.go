package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Euclidean is the straight-line distance between two cells.
func Euclidean(from, to gridgraph.Cell) float64 {
	dr := float64(from.Row - to.Row)
	dc := float64(from.Col - to.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Manhattan is the 4-directional grid distance between two cells. It is exact
// on an open grid and still admissible when cells are Blocked.
func Manhattan(from, to gridgraph.Cell) float64 {
	return math.Abs(float64(from.Row-to.Row)) + math.Abs(float64(from.Col-to.Col))
}
