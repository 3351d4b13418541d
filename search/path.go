package search

import (
	"fmt"

	"github.com/paingkl/routelab/core"
)

// Reconstruct walks pred backwards from goal until it reaches start and
// returns the sequence start … goal. pred[v] is the predecessor of v; start
// itself needs no entry. Reconstruct(pred, s, s) is [s].
//
// A missing link, or a chain longer than pred can hold (a cycle), yields
// ErrBrokenChain naming the vertex where the walk stopped.
//
// Complexity: O(length of the path).
func Reconstruct[K comparable](pred map[K]K, start, goal K) ([]K, error) {
	path := []K{goal}
	cur := goal
	for cur != start {
		p, ok := pred[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrBrokenChain, cur)
		}
		if len(path) > len(pred) {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, cur)
		}
		path = append(path, p)
		cur = p
	}

	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Measure sums distance and cost arc by arc along path. A single vertex
// measures (0, 0). An arc missing from g yields core.ErrEdgeNotFound.
func Measure(g *core.Graph, path []string) (float64, float64, error) {
	if g == nil {
		return 0, 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, 0, ErrEmptyPath
	}
	if !g.HasVertex(path[0]) {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, path[0])
	}

	var dist, cost float64
	for i := 1; i < len(path); i++ {
		e, err := g.Edge(path[i-1], path[i])
		if err != nil {
			return 0, 0, fmt.Errorf("search: measure hop %d: %w", i, err)
		}
		dist += e.Distance
		cost += e.Cost
	}

	return dist, cost, nil
}
