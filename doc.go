// Package gridpath finds shortest routes across binary occupancy grids.
//
// What is in the box?
//
//	gridgraph/    — immutable occupancy grid: bounds, passability, 4-neighbors, islands
//	astar/        — A* search engine, best-cost table and path reconstruction
//	scenario/     — grid + start/goal files in YAML, HCL or HCL-JSON
//	cmd/gridpath/ — command-line front end (find, components)
//
// Quick example:
//
//	gg, _ := gridgraph.From2D([][]int{
//		{1, 1, 1},
//		{0, 0, 1},
//		{1, 1, 1},
//	})
//	res, err := astar.FindPath(gg, gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 0})
//	// res.Path: (0, 0) (0, 1) (0, 2) (1, 2) (2, 2) (2, 1) (2, 0)
//
// Movement is 4-directional with unit cost; diagonal moves and weighted
// terrain are not supported.
package gridpath
