// types.go defines the result, option and error types shared by the three
// search variants (Unconstrained, Constrained, AStar).
//
// Options:
//
//	– MaxExpansions: optional cap on processed frontier entries (0 = none).
//	– OnExpand:      hook invoked for every processed frontier entry.
//	– Logger:        receives one debug record per search; nil = silent.
//	– Heuristic:     A* estimate; nil = Euclidean over vertex points.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the graph pointer is nil.
//	– ErrEmptyVertexID    if start or goal is "".
//	– ErrVertexNotFound   if start or goal is not in the graph.
//	– ErrBadBudget        if the budget is negative or NaN.
//	– ErrConfiguration    wraps core.ErrMissingWeight / core.ErrMissingPoint.
//	– ErrBrokenChain      if a predecessor chain does not lead back to start.
//	– ErrEmptyPath        if Measure is handed an empty path.
//	– ErrExpansionLimit   if MaxExpansions was reached before termination.
//	– ErrBadMaxExpansions if WithMaxExpansions receives n < 1 (panic).

package search

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by the search implementations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrEmptyVertexID indicates that start or goal is the empty string.
	ErrEmptyVertexID = errors.New("search: vertex ID is empty")

	// ErrVertexNotFound indicates that start or goal does not exist in the graph.
	ErrVertexNotFound = errors.New("search: vertex not found in graph")

	// ErrBadBudget indicates a negative or NaN cost budget.
	ErrBadBudget = errors.New("search: budget must be a non-negative number")

	// ErrConfiguration marks fatal input inconsistencies: an arc without a
	// weight, or a heuristic search reaching a vertex without coordinates.
	// The underlying core sentinel is wrapped alongside it.
	ErrConfiguration = errors.New("search: configuration error")

	// ErrBrokenChain indicates a predecessor chain that does not reach the
	// start vertex. Searches never produce one; it signals a caller bug.
	ErrBrokenChain = errors.New("search: broken predecessor chain")

	// ErrEmptyPath indicates Measure was called with no vertices.
	ErrEmptyPath = errors.New("search: empty path")

	// ErrExpansionLimit indicates the search stopped at MaxExpansions.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBadMaxExpansions indicates WithMaxExpansions was given n < 1.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be positive")
)

// Heuristic estimates the remaining distance from id to goal. It must never
// overestimate for A* to stay optimal. An error aborts the search.
type Heuristic func(id, goal string) (float64, error)

// Result is the outcome of one search call.
//
// Found == false is the "no path" outcome: Path is nil and both totals are
// zero. A trivial start==goal route is Found with a single-vertex Path.
type Result struct {
	Path     []string // start … goal, inclusive
	Distance float64  // sum of arc distances along Path
	Cost     float64  // sum of arc costs along Path
	Found    bool
	Stats    Stats
}

// Stats reports how much work a search did.
type Stats struct {
	Expanded int // frontier entries processed (goal included)
	Visited  int // distinct vertices among them
	Pushed   int // frontier insertions, start included
	Pruned   int // relaxations rejected for exceeding the budget
}

// Options configures a search call.
type Options struct {
	MaxExpansions int                                     // 0 = unlimited
	OnExpand      func(id string, distance, cost float64) // per processed entry
	Logger        *slog.Logger                            // nil = silent
	Heuristic     Heuristic                               // AStar only; nil = Euclidean
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the zero configuration: no limit, no hook, no
// logger, Euclidean heuristic.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxExpansions stops the search with ErrExpansionLimit once n frontier
// entries have been processed without reaching a terminal state. It lets
// callers bound latency; a run that completes within the limit is unaffected.
// Panics if n < 1.
func WithMaxExpansions(n int) Option {
	if n < 1 {
		panic(ErrBadMaxExpansions.Error())
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithOnExpand registers fn to be called with the vertex, cumulative
// distance and cumulative cost of every processed frontier entry.
func WithOnExpand(fn func(id string, distance, cost float64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithLogger sends a debug record per search to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithHeuristic replaces the Euclidean heuristic used by AStar.
// Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("search: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}
