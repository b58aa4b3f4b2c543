package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Entry is the best-known cost record for one cell.
// F is +Inf while the cell is unvisited; Parent equals the cell itself until set.
type Entry struct {
	F, G, H float64
	Parent  gridgraph.Cell
}

// Table holds one Entry per grid cell in row-major order.
// It is the single source of truth for cost comparison and path reconstruction.
type Table struct {
	gg      *gridgraph.GridGraph
	entries []Entry
}

// NewTable allocates a table for gg with every cell unvisited.
func NewTable(gg *gridgraph.GridGraph) *Table {
	entries := make([]Entry, gg.Size())
	for i := range entries {
		entries[i] = Entry{
			F:      math.Inf(1),
			G:      math.Inf(1),
			Parent: gg.Coordinate(i),
		}
	}
	return &Table{gg: gg, entries: entries}
}

// At returns the entry for c. c must be in bounds.
func (t *Table) At(c gridgraph.Cell) Entry {
	return t.entries[t.gg.Index(c)]
}

// Visited reports whether c has left the +Inf sentinel.
func (t *Table) Visited(c gridgraph.Cell) bool {
	return !math.IsInf(t.At(c).F, 1)
}

// Record overwrites the entry for c unconditionally, keeping F = G + H.
func (t *Table) Record(c, parent gridgraph.Cell, g, h float64) {
	t.entries[t.gg.Index(c)] = Entry{F: g + h, G: g, H: h, Parent: parent}
}

// Improve records (parent, g, h) for c only if c is unvisited or g+h is
// strictly lower than the stored F. Equal or worse candidates are discarded.
func (t *Table) Improve(c, parent gridgraph.Cell, g, h float64) bool {
	if t.Visited(c) && g+h >= t.At(c).F {
		return false
	}
	t.Record(c, parent, g, h)
	return true
}

// Grid returns the grid the table was built for.
func (t *Table) Grid() *gridgraph.GridGraph {
	return t.gg
}
