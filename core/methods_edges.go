// File: methods_edges.go
// Role: Arc lifecycle & queries: AddEdge/Edge/HasEdge/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors() preserves insertion order.
//   - Edges() returns arcs sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge inserts the arc from→to with the given distance and cost.
// Missing endpoints are created. With WithMirrored the reverse arc to→from is
// inserted too, carrying the same weights.
//
// Steps:
//  1. Validate IDs, weights, loops.
//  2. Lock, reject duplicates (both directions when mirrored).
//  3. Store arc(s) and append to adjacency.
//
// Errors: ErrEmptyVertexID, ErrNegativeWeight, ErrLoopNotAllowed, ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, distance, cost float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if badWeight(distance) || badWeight(cost) {
		return fmt.Errorf("%w: edge %s→%s distance=%g cost=%g", ErrNegativeWeight, from, to, distance, cost)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.edges[arc{from, to}]; dup {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}
	mirror := g.mirrored && from != to
	if mirror {
		if _, dup := g.edges[arc{to, from}]; dup {
			return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, to, from)
		}
	}

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.link(from, to, distance, cost)
	if mirror {
		g.link(to, from, distance, cost)
	}

	return nil
}

// link stores one arc; caller holds the write lock and has checked duplicates.
func (g *Graph) link(from, to string, distance, cost float64) {
	g.edges[arc{from, to}] = &Edge{From: from, To: to, Distance: distance, Cost: cost}
	g.adjacency[from] = append(g.adjacency[from], to)
}

// badWeight reports whether w is unusable as an arc weight.
func badWeight(w float64) bool {
	return w < 0 || math.IsNaN(w)
}

// HasEdge reports whether the arc from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[arc{from, to}]

	return ok
}

// Edge returns a copy of the arc from→to, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(from, to string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[arc{from, to}]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return *e, nil
}

// Neighbors returns the out-neighbors of id in insertion order.
// The slice is a copy; callers may keep it.
//
// Errors: ErrVertexNotFound if id is absent.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	adj := g.adjacency[id]
	out := make([]string, len(adj))
	copy(out, adj)

	return out, nil
}

// OutEdges returns the arcs leaving id in insertion order.
// Searches use it to fetch weights and neighbors under one read lock.
func (g *Graph) OutEdges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	adj := g.adjacency[id]
	out := make([]Edge, 0, len(adj))
	for _, to := range adj {
		e, ok := g.edges[arc{id, to}]
		if !ok {
			// adjacency without a catalog entry means the graph was assembled wrong
			return nil, fmt.Errorf("%w: %s→%s", ErrMissingWeight, id, to)
		}
		out = append(out, *e)
	}

	return out, nil
}

// Edges returns all arcs sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of arcs (a mirrored road counts twice).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
