package search

import (
	"github.com/paingkl/routelab/core"
	"github.com/paingkl/routelab/frontier"
)

// Unconstrained finds the minimum-distance path from start to goal with no
// cost budget. The cost of the returned path is reported but never limits
// the search.
//
// Returns:
//
//   - Result with Found=true, Path start…goal and its totals; or
//   - Result with Found=false when goal is unreachable (err == nil).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be non-empty (ErrEmptyVertexID).
//  3. start and goal must exist in g (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Unconstrained(g *core.Graph, start, goal string, opts ...Option) (Result, error) {
	cfg := buildOptions(opts)
	if err := validate(g, start, goal); err != nil {
		return Result{}, err
	}

	r := &ucsRunner{
		g:     g,
		cfg:   &cfg,
		start: start,
		goal:  goal,
		dist:  make(map[string]float64),
		cost:  make(map[string]float64),
		pred:  make(map[string]string),
		done:  make(map[string]bool),
		pq:    frontier.ByKey(func(e ucsEntry) float64 { return e.dist }),
		tally: newTally(),
	}
	res, err := r.run()
	logResult(&cfg, nameUnconstrained, start, goal, res, err)

	return res, err
}

// ucsEntry is a frontier entry: a vertex and the distance it was pushed with.
type ucsEntry struct {
	id   string
	dist float64
}

// ucsRunner holds the mutable state of one Unconstrained call.
//
// A vertex absent from dist has not been reached; there is no numeric
// "infinity" sentinel.
type ucsRunner struct {
	g     *core.Graph
	cfg   *Options
	start string
	goal  string
	dist  map[string]float64 // best-known cumulative distance
	cost  map[string]float64 // cumulative cost along pred chain
	pred  map[string]string  // predecessor on best-known path; start absent
	done  map[string]bool    // finalized vertices
	pq    *frontier.Queue[ucsEntry]
	tally tally
}

// run is the main loop: pop the closest entry, stop at the goal, relax the rest.
func (r *ucsRunner) run() (Result, error) {
	r.dist[r.start] = 0
	r.cost[r.start] = 0
	r.pq.Push(ucsEntry{id: r.start, dist: 0})
	r.tally.Pushed++

	for {
		e, ok := r.pq.Pop()
		if !ok {
			// frontier exhausted: goal unreachable
			return Result{Stats: r.tally.Stats}, nil
		}

		// Lazy decrease-key: skip stale entries and finalized vertices.
		if r.done[e.id] || e.dist > r.dist[e.id] {
			continue
		}
		r.done[e.id] = true
		if err := r.tally.expand(r.cfg, e.id, e.dist, r.cost[e.id]); err != nil {
			return Result{Stats: r.tally.Stats}, err
		}

		if e.id == r.goal {
			path, err := Reconstruct(r.pred, r.start, r.goal)
			if err != nil {
				return Result{Stats: r.tally.Stats}, err
			}
			return Result{
				Path:     path,
				Distance: r.dist[e.id],
				Cost:     r.cost[e.id],
				Found:    true,
				Stats:    r.tally.Stats,
			}, nil
		}

		if err := r.relax(e.id); err != nil {
			return Result{Stats: r.tally.Stats}, err
		}
	}
}

// relax improves every out-neighbor of the finalized vertex u whose recorded
// distance the path through u strictly beats.
func (r *ucsRunner) relax(u string) error {
	out, err := outEdges(r.g, u)
	if err != nil {
		return err
	}
	du, cu := r.dist[u], r.cost[u]

	var (
		e     core.Edge
		nd    float64
		known float64
		seen  bool
	)
	for _, e = range out {
		if r.done[e.To] {
			continue
		}
		nd = du + e.Distance
		if known, seen = r.dist[e.To]; seen && nd >= known {
			continue
		}
		r.dist[e.To] = nd
		r.cost[e.To] = cu + e.Cost
		r.pred[e.To] = u
		r.pq.Push(ucsEntry{id: e.To, dist: nd})
		r.tally.Pushed++
	}

	return nil
}
