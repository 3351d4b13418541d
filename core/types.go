// Package core defines the dual-weight directed Graph used by the search
// engines, together with its Vertex and Edge types and sentinel errors.
//
// Every arc carries two independent, non-negative weights:
//
//	Distance – the quantity a search minimises.
//	Cost     – the secondary quantity a budget constrains (e.g. energy).
//
// Vertices may optionally carry a planar point (orb.Point). Points are only
// required by heuristic-guided searches.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested arc does not exist.
//	ErrNegativeWeight  - distance or cost is negative or NaN.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
//	ErrDuplicateEdge   - arc from→to already present.
//	ErrMissingWeight   - a table lists an arc without a distance or cost.
//	ErrMissingPoint    - a vertex has no coordinates where they are required.
//	ErrBadPairKey      - a "u,v" key cannot be split into two vertex IDs.
//	ErrNoPoints        - a Locator was requested over a graph without points.
package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent arc.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative (or NaN) distance or cost.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second arc between the same ordered pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrMissingWeight indicates an arc with no distance or no cost entry.
	ErrMissingWeight = errors.New("core: edge weight missing")

	// ErrMissingPoint indicates a vertex without coordinates.
	ErrMissingPoint = errors.New("core: vertex coordinates missing")

	// ErrBadPairKey indicates a malformed "u,v" table key.
	ErrBadPairKey = errors.New("core: malformed pair key")

	// ErrNoPoints indicates a Locator was built over a graph with no coordinates.
	ErrNoPoints = errors.New("core: graph has no vertex coordinates")
)

// Vertex represents a node in the graph.
//
// Point is meaningful only when HasPoint is true.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Point is the planar location of the vertex (X, Y).
	Point orb.Point

	// HasPoint reports whether Point was set.
	HasPoint bool
}

// Edge is a directed arc From→To with its two weights.
type Edge struct {
	From string
	To   string

	// Distance is the primary weight minimised by every search.
	Distance float64

	// Cost is the secondary weight bounded by a budget.
	Cost float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMirrored makes AddEdge insert the reverse arc as well, with identical
// weights. Lab instances list every road in both directions; this option
// lets builders state each road once.
func WithMirrored() GraphOption {
	return func(g *Graph) { g.mirrored = true }
}

// arc is the ordered-pair key of the edge catalog.
type arc struct {
	from, to string
}

// Graph is the in-memory dual-weight directed graph.
//
// mu guards every field below it. Searches only read; callers must not
// mutate a Graph while searches over it are running.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool // allow self-loops
	mirrored   bool // AddEdge also inserts the reverse arc

	// Storage
	vertices map[string]*Vertex // vertex ID → Vertex
	edges    map[arc]*Edge      // (from,to) → Edge

	// adjacency[from] lists out-neighbors in insertion order.
	adjacency map[string][]string

	// pointCount counts vertices with HasPoint == true.
	pointCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is directed without loops or mirroring.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[arc]*Edge),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Mirrored reports whether AddEdge inserts reverse arcs.
func (g *Graph) Mirrored() bool { return g.mirrored }
