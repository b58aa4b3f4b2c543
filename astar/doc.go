// Package astar finds shortest 4-directional routes across a gridgraph.GridGraph
// with the A* search algorithm.
//
// Overview:
//
//   - Every move costs 1. The default heuristic is the straight-line (Euclidean)
//     distance to the goal, which never overestimates the remaining grid distance.
//   - The frontier (open set) is a binary heap ordered by f = g + h, ties broken
//     by lower h and then by insertion order, so repeated calls return identical paths.
//   - A per-cell best-cost Table records f, g, h and the parent of every discovered
//     cell. A candidate is adopted only when the cell is unvisited or f strictly improves.
//   - Stale frontier duplicates are tolerated ("lazy decrease-key"); the closed
//     set prevents any cell from being expanded twice.
//
// Goal policies:
//
//   - GoalOnDiscovery (default): the search stops the moment the goal is seen as a
//     neighbor of the cell being expanded (EagerGoalAdjacencyTermination). With a
//     consistent heuristic on unit-cost grids the route is still shortest, but when
//     several shortest routes exist the one returned depends on expansion order.
//   - GoalOnExpansion: classical A*, stops when the goal itself is popped.
//
// Path reconstruction:
//
//   - Reconstruct walks parent pointers from goal back to start and stops when
//     the coordinate equals start on both axes. The walk is bounded by Rows×Cols
//     steps and fails with ErrReconstruction instead of looping.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         the grid pointer is nil.
//   - ErrInvalidEndpoint: start or goal is out of bounds or Blocked; no search runs.
//   - ErrUnreachable:     the frontier was exhausted without reaching the goal.
//   - ErrBudgetExceeded:  WithMaxExpansions limit reached before a result.
//   - ErrReconstruction:  the parent chain does not lead back to start.
//
// Complexity:
//
//   - Time:  O(R·C·log(R·C)) with the heap frontier, O((R·C)²) with the linear scan.
//   - Space: O(R·C) for the table, closed flags and frontier.
//
// Thread safety:
//
//   - FindPath owns all of its search state; concurrent calls on the same
//     immutable GridGraph are safe.
package astar
