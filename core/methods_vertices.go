// File: methods_vertices.go
// Role: Vertex lifecycle, coordinates & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id; caller holds the write lock.
func (g *Graph) ensureVertex(id string) *Vertex {
	v, ok := g.vertices[id]
	if !ok {
		v = &Vertex{ID: id}
		g.vertices[id] = v
	}

	return v
}

// SetPoint attaches planar coordinates to a vertex, creating it if needed.
// Non-finite coordinates are rejected with ErrMissingPoint since a heuristic
// cannot use them.
func (g *Graph) SetPoint(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return fmt.Errorf("%w: vertex %q has non-finite point (%g, %g)", ErrMissingPoint, id, x, y)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.ensureVertex(id)
	if !v.HasPoint {
		g.pointCount++
	}
	v.Point = orb.Point{x, y}
	v.HasPoint = true

	return nil
}

// Point returns the coordinates of id and whether they are set.
// Unknown vertices report false.
func (g *Graph) Point(id string) (orb.Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok || !v.HasPoint {
		return orb.Point{}, false
	}

	return v.Point, true
}

// HasPoints reports whether at least one vertex carries coordinates.
func (g *Graph) HasPoints() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pointCount > 0
}

// Bound returns the bounding box of all vertex points. The second value is
// false when no vertex has a point.
func (g *Graph) Bound() (orb.Bound, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var (
		b     orb.Bound
		first = true
	)
	for _, v := range g.vertices {
		if !v.HasPoint {
			continue
		}
		if first {
			b = v.Point.Bound()
			first = false
			continue
		}
		b = b.Extend(v.Point)
	}

	return b, !first
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return *v, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
