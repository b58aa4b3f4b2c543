package gridgraph

import "fmt"

// Cell is a grid coordinate. Valid cells satisfy 0 ≤ Row < Rows and 0 ≤ Col < Cols.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row, col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Add returns c shifted by the given row and column deltas.
func (c Cell) Add(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// directions is the fixed 4-neighbor expansion order: +row, +col, −col, −row.
var directions = [4][2]int{{1, 0}, {0, 1}, {0, -1}, {-1, 0}}

// GridOptions contains tunable parameters for grid interpretation.
type GridOptions struct {
	// PassableThreshold specifies the minimum cell value considered Passable.
	PassableThreshold int
}

// DefaultGridOptions returns GridOptions with PassableThreshold=1,
// so 1 means Passable and 0 means Blocked.
func DefaultGridOptions() GridOptions {
	return GridOptions{PassableThreshold: 1}
}

// GridGraph is an immutable occupancy grid.
// Rows and Cols define dimensions; CellValues[row][col] holds the original input value.
type GridGraph struct {
	Rows, Cols        int
	CellValues        [][]int
	PassableThreshold int
}
