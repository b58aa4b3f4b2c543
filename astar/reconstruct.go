package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Reconstruct walks parent pointers in t from goal back to start and returns
// the cells from start to goal inclusive.
//
// The walk stops when the current cell equals start on both Row and Col.
// It fails with ErrReconstruction if a cell has no parent, a parent lies out
// of bounds, or start is not reached within Rows×Cols steps.
func Reconstruct(t *Table, start, goal gridgraph.Cell) ([]gridgraph.Cell, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrReconstruction)
	}
	gg := t.Grid()
	if !gg.IsValid(start) || !gg.IsValid(goal) {
		return nil, fmt.Errorf("%w: endpoint out of bounds", ErrReconstruction)
	}

	limit := gg.Size()
	trace := make([]gridgraph.Cell, 0, 16)
	cur := goal
	for steps := 0; cur != start; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("%w: parent chain from %v did not reach %v within %d steps",
				ErrReconstruction, goal, start, limit)
		}
		trace = append(trace, cur)
		parent := t.At(cur).Parent
		if parent == cur {
			return nil, fmt.Errorf("%w: %v has no parent", ErrReconstruction, cur)
		}
		if !gg.IsValid(parent) {
			return nil, fmt.Errorf("%w: parent %v of %v out of bounds", ErrReconstruction, parent, cur)
		}
		cur = parent
	}
	trace = append(trace, start)

	for i, j := 0, len(trace)-1; i < j; i, j = i+1, j-1 {
		trace[i], trace[j] = trace[j], trace[i]
	}
	return trace, nil
}
