// Package search finds routes through a core.Graph whose arcs carry two
// non-negative weights: a distance to minimize and a cost to keep within a
// budget.
//
// Overview:
//
//   - Unconstrained: uniform-cost search (Dijkstra) on distance alone. The cost
//     of the chosen path is reported but never limits the search.
//   - Constrained: uniform-cost search on distance that discards any extension
//     whose cumulative cost exceeds the budget, and keeps longer-but-cheaper
//     alternatives alive at each vertex.
//   - AStar: Constrained with the frontier ordered by distance plus an
//     estimate of the remaining distance (Euclidean over vertex points by
//     default).
//
// When to use:
//
//   - Unconstrained for plain shortest routes.
//   - Constrained when a second resource (energy, toll, time) is capped.
//   - AStar when vertices have coordinates and arc distances are never shorter
//     than the straight line between their endpoints. It returns the same
//     distance as Constrained on such graphs while expanding fewer entries.
//
// Key features:
//
//   - Every Result path sums exactly to its Distance and Cost (see Measure).
//   - Ties in the frontier resolve first-in first-out, so results are stable
//     for a given graph and neighbor order.
//   - Functional options: WithMaxExpansions, WithOnExpand, WithLogger,
//     WithHeuristic.
//   - Searches only read the graph; any number may run concurrently on it.
//
// Performance and complexity:
//
//   - Unconstrained: O((V + E) log V) with lazy decrease-key.
//   - Constrained / AStar: O(L log L) where L is the number of accepted labels;
//     a label is accepted only when it strictly improves the best distance or
//     the best cost seen at its vertex.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyVertexID, ErrVertexNotFound, ErrBadBudget:
//     input validation, checked in that order before any work.
//   - ErrConfiguration: an arc without weights, a vertex without a point in a
//     Euclidean AStar, or a heuristic returning a negative or NaN estimate.
//     The core sentinel (core.ErrMissingWeight, core.ErrMissingPoint) is
//     wrapped alongside it.
//   - ErrExpansionLimit: MaxExpansions reached before a terminal state.
//   - ErrBrokenChain, ErrEmptyPath: misuse of Reconstruct / Measure.
//
// "No path" is not an error: Found is false, Path is nil and both totals are
// zero.
//
// API reference:
//
//	func Unconstrained(g *core.Graph, start, goal string, opts ...Option) (Result, error)
//	func Constrained(g *core.Graph, start, goal string, budget float64, opts ...Option) (Result, error)
//	func AStar(g *core.Graph, start, goal string, budget float64, opts ...Option) (Result, error)
//	func Reconstruct[K comparable](pred map[K]K, start, goal K) ([]K, error)
//	func Measure(g *core.Graph, path []string) (distance, cost float64, err error)
//
// Example:
//
//	res, err := search.Constrained(g, "S", "T", 11)
//	if err != nil {
//	    return err
//	}
//	if res.Found {
//	    fmt.Println(strings.Join(res.Path, "->"), res.Distance, res.Cost)
//	}
package search
