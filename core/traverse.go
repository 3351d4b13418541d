package core

import "fmt"

// Reachable returns the set of vertices reachable from start by following
// arcs, start included. Weights are ignored, so a goal missing from the set
// has no route at any budget.
//
// Breadth-first, O(V + E).
func Reachable(g *Graph, start string) (map[string]bool, error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, start)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := map[string]bool{start: true}
	queue := []string{start}
	var u string
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for _, v := range g.adjacency[u] {
			if seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return seen, nil
}
