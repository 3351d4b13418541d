// File: locator.go
// Role: Nearest-vertex lookup over vertex points, backed by an R-tree.
//
// City-scale instances identify intersections by opaque IDs; a Locator maps
// a raw (x, y) position to the closest vertex so it can serve as a start or
// goal.

package core

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
)

// R-tree fan-out, matching the usual 2D configuration.
const (
	locatorMinChildren = 25
	locatorMaxChildren = 50

	// pointTolerance gives each point a tiny non-degenerate box; rtreego
	// rejects zero-length sides.
	pointTolerance = 1e-9
)

// vertexEntry wraps a vertex point for R-tree storage.
type vertexEntry struct {
	id   string
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *vertexEntry) Bounds() rtreego.Rect { return e.bbox }

// Locator answers nearest-vertex queries. It snapshots the points at
// construction; later SetPoint calls are not seen.
type Locator struct {
	tree *rtreego.Rtree
	size int
}

// NewLocator indexes every vertex that has a point.
// Returns ErrNoPoints when none do.
func NewLocator(g *Graph) (*Locator, error) {
	if !g.HasPoints() {
		return nil, ErrNoPoints
	}
	tree := rtreego.NewTree(2, locatorMinChildren, locatorMaxChildren)

	// sorted insertion keeps tie resolution stable across runs
	ids := g.Vertices()
	n := 0
	for _, id := range ids {
		p, ok := g.Point(id)
		if !ok {
			continue
		}
		bbox, err := rtreego.NewRect(
			rtreego.Point{p.X() - pointTolerance, p.Y() - pointTolerance},
			[]float64{2 * pointTolerance, 2 * pointTolerance},
		)
		if err != nil {
			return nil, fmt.Errorf("core: index %q: %w", id, err)
		}
		tree.Insert(&vertexEntry{id: id, bbox: bbox})
		n++
	}

	return &Locator{tree: tree, size: n}, nil
}

// Len returns the number of indexed vertices.
func (l *Locator) Len() int { return l.size }

// Nearest returns the ID of the vertex closest to (x, y).
func (l *Locator) Nearest(x, y float64) (string, error) {
	hit := l.tree.NearestNeighbor(rtreego.Point{x, y})
	if hit == nil {
		return "", ErrNoPoints
	}

	return hit.(*vertexEntry).id, nil
}

// NearestN returns up to k vertex IDs ordered by increasing distance to (x, y).
func (l *Locator) NearestN(x, y float64, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}
	if k > l.size {
		k = l.size
	}
	hits := l.tree.NearestNeighbors(k, rtreego.Point{x, y})
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		if h == nil {
			continue
		}
		out = append(out, h.(*vertexEntry).id)
	}
	if len(out) == 0 {
		return nil, ErrNoPoints
	}

	return out, nil
}
