package astar

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FindPath searches gg for a shortest 4-directional route from start to goal.
//
// Returns:
//
//   - Result with Status Found and Path from start to goal inclusive, or
//   - a Result carrying the search counters together with an error.
//
// Preconditions and validation (in order):
//  1. gg must be non-nil (ErrNilGrid).
//  2. start must be in bounds and Passable (ErrInvalidEndpoint).
//  3. goal must be in bounds and Passable (ErrInvalidEndpoint).
//
// When start == goal the result is Found with a single-cell path.
// Otherwise the A* loop runs until the goal is reached (per GoalPolicy),
// the frontier is exhausted (ErrUnreachable) or MaxExpansions is hit
// (ErrBudgetExceeded).
//
// Complexity:
//
//   - Time:  O(R·C·log(R·C)) with FrontierHeap.
//   - Space: O(R·C).
func FindPath(gg *gridgraph.GridGraph, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before any search state is allocated.
	if gg == nil {
		return Result{}, ErrNilGrid
	}
	if err := checkEndpoint(gg, "start", start); err != nil {
		return Result{}, err
	}
	if err := checkEndpoint(gg, "goal", goal); err != nil {
		return Result{}, err
	}

	log := cfg.Logger.With("start", start, "goal", goal)

	// 3) Trivial route.
	if start == goal {
		log.Info("start equals goal")
		return Result{Path: []gridgraph.Cell{start}, Status: Found}, nil
	}

	// 4) Optional component pre-check.
	if cfg.ReachabilityCheck && !gg.SameComponent(start, goal) {
		log.Info("endpoints lie in different components")
		return Result{Status: Unreachable},
			fmt.Errorf("%w: %v and %v lie in different components", ErrUnreachable, start, goal)
	}

	// 5) Run the search.
	r := &runner{
		gg:      gg,
		start:   start,
		goal:    goal,
		options: cfg,
		log:     log,
		table:   NewTable(gg),
		closed:  make([]bool, gg.Size()),
		open:    newFrontier(cfg.Frontier, gg.Size()),
	}
	r.init()
	found, err := r.process()
	if err != nil {
		r.res.Status = Aborted
		log.Info("search aborted", "expanded", r.res.Expanded, "err", err)
		return r.res, err
	}
	if !found {
		r.res.Status = Unreachable
		log.Info("could not find the destination", "expanded", r.res.Expanded)
		return r.res, fmt.Errorf("%w: frontier exhausted after %d expansions", ErrUnreachable, r.res.Expanded)
	}

	// 6) Walk the parent chain.
	path, err := Reconstruct(r.table, start, goal)
	if err != nil {
		return r.res, err
	}
	r.res.Path = path
	r.res.Cost = r.table.At(goal).G
	r.res.Status = Found
	log.Info("reached destination",
		"moves", len(path)-1, "expanded", r.res.Expanded, "pushed", r.res.Pushed, "stale", r.res.Stale)

	return r.res, nil
}

// checkEndpoint rejects out-of-bounds and Blocked endpoints. Bounds are
// checked first so IsPassable never sees an invalid cell.
func checkEndpoint(gg *gridgraph.GridGraph, name string, c gridgraph.Cell) error {
	if !gg.IsValid(c) {
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidEndpoint, name, c, gg.Rows, gg.Cols)
	}
	if !gg.IsPassable(c) {
		return fmt.Errorf("%w: %s %v is blocked", ErrInvalidEndpoint, name, c)
	}
	return nil
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	gg          *gridgraph.GridGraph // read-only
	start, goal gridgraph.Cell
	options     Options
	log         *slog.Logger
	table       *Table   // best-known f/g/h and parent per cell
	closed      []bool   // expanded cells, row-major
	open        frontier // may hold stale duplicates
	seq         int
	res         Result
}

// init records the start cell with g = 0 and pushes it onto the frontier.
func (r *runner) init() {
	h := r.options.Heuristic(r.start, r.goal)
	r.table.Record(r.start, r.start, 0, h)
	r.push(r.start, r.start, 0, h)
}

func (r *runner) push(c, parent gridgraph.Cell, g, h float64) {
	r.open.push(&node{cell: c, parent: parent, g: g, h: h, f: g + h, seq: r.seq})
	r.seq++
	r.res.Pushed++
}

// process is the main A* loop. It reports whether the goal was reached.
//
// Loop termination conditions:
//
//   - The goal is discovered (GoalOnDiscovery) or popped (GoalOnExpansion).
//   - The frontier becomes empty.
//   - MaxExpansions cells have been expanded.
func (r *runner) process() (bool, error) {
	for r.open.Len() > 0 {
		if r.options.MaxExpansions > 0 && r.res.Expanded >= r.options.MaxExpansions {
			return false, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.res.Expanded)
		}

		// 1) Pop the lowest-f entry; skip it if its cell is already final.
		cur := r.open.pop()
		idx := r.gg.Index(cur.cell)
		if r.closed[idx] {
			r.res.Stale++
			continue
		}

		// 2) Close it.
		r.closed[idx] = true
		r.res.Expanded++
		r.log.Debug("expand", "cell", cur.cell, "parent", cur.parent, "g", cur.g, "h", cur.h, "f", cur.f)

		if r.options.GoalPolicy == GoalOnExpansion && cur.cell == r.goal {
			return true, nil
		}

		// 3) Relax its neighbors.
		if r.expand(cur.cell) {
			return true, nil
		}
	}

	return false, nil
}

// expand visits the neighbors of u in fixed order and relaxes each one.
// It returns true when GoalOnDiscovery sees the goal.
func (r *runner) expand(u gridgraph.Cell) bool {
	gU := r.table.At(u).G
	for _, v := range r.gg.Neighbors(u) {
		if !r.gg.IsPassable(v) {
			continue
		}
		if r.closed[r.gg.Index(v)] {
			continue
		}

		g := gU + 1
		if r.options.GoalPolicy == GoalOnDiscovery && v == r.goal {
			r.table.Record(v, u, g, 0)
			return true
		}

		h := r.options.Heuristic(v, r.goal)
		if r.table.Improve(v, u, g, h) {
			r.push(v, u, g, h)
		}
	}

	return false
}
