package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
	}

	return &GridGraph{
		Rows:              rows,
		Cols:              cols,
		CellValues:        cells,
		PassableThreshold: opts.PassableThreshold,
	}, nil
}

// From2D builds a GridGraph with DefaultGridOptions.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// IsValid reports whether c lies within the grid boundaries.
func (gg *GridGraph) IsValid(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Rows && c.Col >= 0 && c.Col < gg.Cols
}

// IsPassable reports whether c holds a Passable value.
// The caller must check IsValid first; out-of-range cells panic.
func (gg *GridGraph) IsPassable(c Cell) bool {
	return gg.CellValues[c.Row][c.Col] >= gg.PassableThreshold
}

// Open reports whether c is both in bounds and Passable.
func (gg *GridGraph) Open(c Cell) bool {
	return gg.IsValid(c) && gg.IsPassable(c)
}

// Neighbors returns the in-bounds 4-neighbors of c in the fixed order
// +row, +col, −col, −row. Occupancy is not filtered.
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(directions))
	for _, d := range directions {
		n := c.Add(d[0], d[1])
		if gg.IsValid(n) {
			out = append(out, n)
		}
	}
	return out
}

// Size returns the number of cells, Rows×Cols.
func (gg *GridGraph) Size() int {
	return gg.Rows * gg.Cols
}

// Index maps c to a row-major index: Row*Cols + Col.
func (gg *GridGraph) Index(c Cell) int {
	return c.Row*gg.Cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.Cols, Col: idx % gg.Cols}
}
