// Package core provides the thread-safe, dual-weight directed Graph every
// search in this module runs on.
//
// The Graph G = (V, A) stores:
//
//   - Vertices, optionally carrying a planar point (orb.Point) used by
//     heuristic searches and by the nearest-vertex Locator.
//   - Arcs u→v carrying two independent non-negative weights, Distance and
//     Cost. An arc (u,v) may exist without (v,u); WithMirrored inserts both.
//   - Out-neighbor lists in insertion order, so searches expand neighbors in
//     the order the instance lists them.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(u,u,…) → ErrLoopNotAllowed.
//
//	– WithMirrored()
//	    AddEdge(u,v,d,c) also inserts v→u with the same weights.
//
// Building from tables:
//
//	g, err := core.FromTables(core.Tables{
//	    Adjacency: map[string][]string{"S": {"T"}, "T": {"S"}},
//	    Distance:  map[string]float64{"S,T": 4, "T,S": 4},
//	    Cost:      map[string]float64{"S,T": 7, "T,S": 7},
//	})
//
// A table arc without a distance or cost is a fatal configuration error
// (ErrMissingWeight) reported with the offending "u,v" key.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; a single sync.RWMutex guards
//     the graph.
//   - Searches only read. Mutating a graph while searches run over it is a
//     caller bug: results are then undefined, though never a data race.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasEdge, Edge: O(1) amortized.
//   - Neighbors, OutEdges: O(deg).
//   - Vertices, Edges: O(V log V), O(E log E) (sorted output).
//   - Reachable: O(V + E).
//   - Locator: O(V log V) build, O(log V) expected per query.
package core
