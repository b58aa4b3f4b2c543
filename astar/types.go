package astar

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by FindPath and Reconstruct.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal is out of bounds or Blocked.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrUnreachable indicates that the open set was exhausted before the goal was reached.
	ErrUnreachable = errors.New("astar: goal unreachable")

	// ErrBudgetExceeded indicates that the expansion budget ran out before a result.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrReconstruction indicates that the parent chain did not lead back to start.
	ErrReconstruction = errors.New("astar: path reconstruction failed")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")
)

// Status is the terminal state of a search.
type Status int

const (
	// NotRun means no search was performed (invalid input).
	NotRun Status = iota
	// Found means the goal was reached and Result.Path is populated.
	Found
	// Unreachable means the frontier was exhausted without reaching the goal.
	Unreachable
	// Aborted means the expansion budget ran out.
	Aborted
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	case Aborted:
		return "aborted"
	default:
		return "not-run"
	}
}

// GoalPolicy selects when the search declares success.
type GoalPolicy int

const (
	// GoalOnDiscovery stops as soon as the goal is discovered as a neighbor
	// of the expanded cell (EagerGoalAdjacencyTermination).
	GoalOnDiscovery GoalPolicy = iota
	// GoalOnExpansion stops when the goal is popped from the frontier.
	GoalOnExpansion
)

// Frontier selects the open-set implementation.
type Frontier int

const (
	// FrontierHeap is a binary min-heap keyed on f, then h, then insertion order.
	FrontierHeap Frontier = iota
	// FrontierLinearScan picks the first entry with strictly lowest f in a linear
	// scan and removes it by swapping in the last entry.
	FrontierLinearScan
)

// Heuristic estimates the remaining cost from a cell to the goal.
// It must never overestimate the true 4-directional distance.
type Heuristic func(from, to gridgraph.Cell) float64

// Options configures FindPath.
//
// GoalPolicy        – when success is declared (default GoalOnDiscovery).
// Frontier          – open-set implementation (default FrontierHeap).
// Heuristic         – remaining-cost estimate (default Euclidean).
// MaxExpansions     – cap on expanded cells; 0 means unlimited.
// ReachabilityCheck – reject start/goal in different components before searching.
// Logger            – receives debug and info records; nil-safe default discards.
type Options struct {
	GoalPolicy        GoalPolicy
	Frontier          Frontier
	Heuristic         Heuristic
	MaxExpansions     int
	ReachabilityCheck bool
	Logger            *slog.Logger
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithGoalPolicy sets when the search declares success.
func WithGoalPolicy(p GoalPolicy) Option {
	return func(o *Options) {
		o.GoalPolicy = p
	}
}

// WithFrontier selects the open-set implementation.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithHeuristic replaces the Euclidean heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxExpansions bounds the number of cells the search may expand.
// Zero means unlimited; a negative value panics with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithReachabilityCheck makes FindPath compare the connected components of
// start and goal first and return ErrUnreachable without searching when they differ.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// WithLogger routes search diagnostics to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults used by FindPath:
// GoalOnDiscovery, FrontierHeap, Euclidean, no budget, no pre-check, discarded logs.
func DefaultOptions() Options {
	return Options{
		GoalPolicy: GoalOnDiscovery,
		Frontier:   FrontierHeap,
		Heuristic:  Euclidean,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Result contains the outcome of a search.
//
// Path     – cells from start to goal inclusive; nil unless Status == Found.
// Cost     – number of moves along Path.
// Expanded – cells moved into the closed set.
// Pushed   – frontier entries created, including the start entry.
// Stale    – popped entries skipped because their cell was already closed.
type Result struct {
	Path     []gridgraph.Cell
	Cost     float64
	Expanded int
	Pushed   int
	Stale    int
	Status   Status
}
