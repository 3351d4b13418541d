package search

import (
	"fmt"

	"github.com/paulmach/orb/planar"

	"github.com/paingkl/routelab/core"
)

// Euclidean returns the straight-line heuristic over the vertex points of g.
// It is admissible whenever arc distances are at least the planar distance
// between their endpoints, as with physical road lengths.
//
// A vertex without a point yields ErrConfiguration wrapping
// core.ErrMissingPoint.
func Euclidean(g *core.Graph) Heuristic {
	return func(id, goal string) (float64, error) {
		p, ok := g.Point(id)
		if !ok {
			return 0, fmt.Errorf("%w: %w: vertex %q", ErrConfiguration, core.ErrMissingPoint, id)
		}
		q, ok := g.Point(goal)
		if !ok {
			return 0, fmt.Errorf("%w: %w: goal %q", ErrConfiguration, core.ErrMissingPoint, goal)
		}

		return planar.Distance(p, q), nil
	}
}

// Zero is the trivial heuristic; AStar with Zero expands like Constrained.
func Zero(string, string) (float64, error) { return 0, nil }
