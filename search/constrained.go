package search

import (
	"github.com/paingkl/routelab/core"
	"github.com/paingkl/routelab/frontier"
)

// Constrained finds a short path from start to goal whose cumulative cost
// stays within budget. Entries are expanded in order of cumulative distance.
//
// Relaxation rule for arc u→n out of a processed entry (du, cu):
//
//	accept iff cu+cost(u,n) <= budget
//	       and (n unreached
//	            or du+dist(u,n) <  bestDist[n]
//	            or cu+cost(u,n) <  bestCost[n])
//
// Because cost is not part of the priority, a vertex may be re-entered on a
// longer but cheaper path; that alternative is kept since it may be the only
// way to stay under budget further on. Each accepted relaxation becomes its
// own label with a parent link, so the returned Path always sums to the
// returned Distance and Cost.
//
// Over-budget labels never enter the frontier, so a popped goal is always
// within budget.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be non-empty (ErrEmptyVertexID).
//  3. start and goal must exist in g (ErrVertexNotFound).
//  4. budget must be ≥ 0 and not NaN (ErrBadBudget); +Inf disables pruning.
func Constrained(g *core.Graph, start, goal string, budget float64, opts ...Option) (Result, error) {
	cfg := buildOptions(opts)
	if err := validate(g, start, goal); err != nil {
		return Result{}, err
	}
	if err := validateBudget(budget); err != nil {
		return Result{}, err
	}

	r := newLabelRunner(g, &cfg, start, goal, budget, nil)
	res, err := r.run()
	logResult(&cfg, nameConstrained, start, goal, res, err)

	return res, err
}

// label is one accepted partial path ending at id.
type label struct {
	id     string
	dist   float64
	cost   float64
	parent int // index into labels; -1 for the start label
}

// labelEntry is a frontier entry referring to a label by index.
type labelEntry struct {
	idx  int
	prio float64
}

// labelRunner holds the mutable state of one Constrained or AStar call.
type labelRunner struct {
	g      *core.Graph
	cfg    *Options
	start  string
	goal   string
	budget float64

	// estimate returns the heuristic term of the priority; nil means zero.
	estimate func(id string) (float64, error)

	labels   []label
	pred     map[int]int        // label → parent label; start label absent
	bestDist map[string]float64 // best distance over all labels at a vertex
	bestCost map[string]float64 // best cost over all labels at a vertex
	pq       *frontier.Queue[labelEntry]
	tally    tally
}

func newLabelRunner(
	g *core.Graph,
	cfg *Options,
	start, goal string,
	budget float64,
	estimate func(id string) (float64, error),
) *labelRunner {
	return &labelRunner{
		g:        g,
		cfg:      cfg,
		start:    start,
		goal:     goal,
		budget:   budget,
		estimate: estimate,
		pred:     make(map[int]int),
		bestDist: make(map[string]float64),
		bestCost: make(map[string]float64),
		pq:       frontier.ByKey(func(e labelEntry) float64 { return e.prio }),
		tally:    newTally(),
	}
}

// push records a new label and queues it with distance + estimate.
func (r *labelRunner) push(l label) error {
	prio := l.dist
	if r.estimate != nil {
		h, err := r.estimate(l.id)
		if err != nil {
			return err
		}
		prio += h
	}
	idx := len(r.labels)
	r.labels = append(r.labels, l)
	if l.parent >= 0 {
		r.pred[idx] = l.parent
	}
	r.bestDist[l.id] = minFloat(r.bestDist, l.id, l.dist)
	r.bestCost[l.id] = minFloat(r.bestCost, l.id, l.cost)
	r.pq.Push(labelEntry{idx: idx, prio: prio})
	r.tally.Pushed++

	return nil
}

// run is the main loop; its three outcomes are frontier exhausted, goal
// popped, or an error.
func (r *labelRunner) run() (Result, error) {
	if err := r.push(label{id: r.start, parent: -1}); err != nil {
		return Result{Stats: r.tally.Stats}, err
	}

	for {
		e, ok := r.pq.Pop()
		if !ok {
			return Result{Stats: r.tally.Stats}, nil
		}
		cur := r.labels[e.idx]
		if err := r.tally.expand(r.cfg, cur.id, cur.dist, cur.cost); err != nil {
			return Result{Stats: r.tally.Stats}, err
		}

		if cur.id == r.goal {
			path, err := r.path(e.idx)
			if err != nil {
				return Result{Stats: r.tally.Stats}, err
			}
			return Result{
				Path:     path,
				Distance: cur.dist,
				Cost:     cur.cost,
				Found:    true,
				Stats:    r.tally.Stats,
			}, nil
		}

		if err := r.relax(e.idx, cur); err != nil {
			return Result{Stats: r.tally.Stats}, err
		}
	}
}

// relax applies the dual-metric rule to every arc leaving cur.
func (r *labelRunner) relax(idx int, cur label) error {
	out, err := outEdges(r.g, cur.id)
	if err != nil {
		return err
	}

	var (
		e      core.Edge
		nd, nc float64
	)
	for _, e = range out {
		nc = cur.cost + e.Cost
		if nc > r.budget {
			r.tally.Pruned++
			continue
		}
		nd = cur.dist + e.Distance
		if !r.improves(e.To, nd, nc) {
			continue
		}
		if err = r.push(label{id: e.To, dist: nd, cost: nc, parent: idx}); err != nil {
			return err
		}
	}

	return nil
}

// improves reports whether (nd, nc) beats the best-known distance OR the
// best-known cost at id, or id has no label yet.
func (r *labelRunner) improves(id string, nd, nc float64) bool {
	bd, reached := r.bestDist[id]
	if !reached {
		return true
	}

	return nd < bd || nc < r.bestCost[id]
}

// path rebuilds the vertex sequence ending at label idx.
func (r *labelRunner) path(idx int) ([]string, error) {
	chain, err := Reconstruct(r.pred, 0, idx)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(chain))
	for i, li := range chain {
		out[i] = r.labels[li].id
	}

	return out, nil
}

// minFloat returns min(m[k], v), treating an absent key as +∞.
func minFloat(m map[string]float64, k string, v float64) float64 {
	if old, ok := m[k]; ok && old < v {
		return old
	}

	return v
}
