// Package gridgraph treats a rectangular 2D grid of cell values as an
// occupancy map that path searches can walk over.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable PassableThreshold.
//   - Cells with value ≥ PassableThreshold are Passable, all others are Blocked.
//   - Answers bounds (IsValid) and occupancy (IsPassable) queries in O(1).
//   - Enumerates 4-directional neighbors in a fixed order: +row, +col, −col, −row.
//   - Identifies connected components ("islands") of Passable cells.
//
// Dimensions are carried at runtime and validated once by NewGridGraph;
// the grid is deep-copied and never mutated afterwards.
//
// Complexity:
//
//   - NewGridGraph:        O(R×C) time and memory.
//   - IsValid, IsPassable: O(1).
//   - ConnectedComponents: O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
