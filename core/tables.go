// File: tables.go
// Role: Build a Graph from already-parsed lookup tables keyed by "u,v".
//
// The table layout is the one the routing instances are distributed in:
//
//	Adjacency: {"S": ["1","2"], ...}
//	Distance:  {"S,1": 4, ...}
//	Cost:      {"S,1": 7, ...}
//	Coord:     {"S": [x, y], ...}   (optional)
//
// Decoding the files themselves is left to the caller.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// pairSep separates the two vertex IDs of a table key.
const pairSep = ","

// Tables holds the parsed instance tables.
type Tables struct {
	Adjacency map[string][]string
	Distance  map[string]float64
	Cost      map[string]float64
	Coord     map[string][2]float64
}

// PairKey returns the table key of the arc u→v.
func PairKey(u, v string) string { return u + pairSep + v }

// SplitPairKey splits a "u,v" key. Vertex IDs must be non-empty and the key
// must contain exactly one separator.
func SplitPairKey(key string) (string, string, error) {
	u, v, ok := strings.Cut(key, pairSep)
	if !ok || u == "" || v == "" || strings.Contains(v, pairSep) {
		return "", "", fmt.Errorf("%w: %q", ErrBadPairKey, key)
	}

	return u, v, nil
}

// FromTables assembles a Graph from t. Every arc listed in Adjacency must
// have both a Distance and a Cost entry; a missing one is a configuration
// error (ErrMissingWeight) naming the key. When Coord is non-empty it must
// cover every vertex (ErrMissingPoint). Weight entries for arcs absent from
// Adjacency are ignored.
//
// Vertices are processed in sorted order so errors are reproducible; each
// neighbor list keeps its given order.
//
// Options are applied to the new graph; WithMirrored is usually wrong here
// since tables already list both directions.
func FromTables(t Tables, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)

	froms := make([]string, 0, len(t.Adjacency))
	for u := range t.Adjacency {
		froms = append(froms, u)
	}
	sort.Strings(froms)

	var (
		u, v, key string
		d, c      float64
		ok        bool
	)
	for _, u = range froms {
		if err := g.AddVertex(u); err != nil {
			return nil, fmt.Errorf("core: FromTables: %w", err)
		}
		for _, v = range t.Adjacency[u] {
			key = PairKey(u, v)
			if d, ok = t.Distance[key]; !ok {
				return nil, fmt.Errorf("%w: no distance for %q", ErrMissingWeight, key)
			}
			if c, ok = t.Cost[key]; !ok {
				return nil, fmt.Errorf("%w: no cost for %q", ErrMissingWeight, key)
			}
			if err := g.AddEdge(u, v, d, c); err != nil {
				return nil, fmt.Errorf("core: FromTables %q: %w", key, err)
			}
		}
	}

	if len(t.Coord) == 0 {
		return g, nil
	}
	for id, p := range t.Coord {
		if err := g.SetPoint(id, p[0], p[1]); err != nil {
			return nil, fmt.Errorf("core: FromTables: %w", err)
		}
	}
	for _, id := range g.Vertices() {
		if _, ok = g.Point(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingPoint, id)
		}
	}

	return g, nil
}

// Tables exports g back into the table layout. Coord is nil when no vertex
// has a point.
func (g *Graph) Tables() Tables {
	g.mu.RLock()
	defer g.mu.RUnlock()
	t := Tables{
		Adjacency: make(map[string][]string, len(g.vertices)),
		Distance:  make(map[string]float64, len(g.edges)),
		Cost:      make(map[string]float64, len(g.edges)),
	}
	for id := range g.vertices {
		t.Adjacency[id] = append([]string(nil), g.adjacency[id]...)
	}
	for k, e := range g.edges {
		key := PairKey(k.from, k.to)
		t.Distance[key] = e.Distance
		t.Cost[key] = e.Cost
	}
	if g.pointCount > 0 {
		t.Coord = make(map[string][2]float64, g.pointCount)
		for id, v := range g.vertices {
			if v.HasPoint {
				t.Coord[id] = [2]float64{v.Point.X(), v.Point.Y()}
			}
		}
	}

	return t
}
