package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// formatNumber prints integral values without a fractional part.
func formatNumber(v float64) string {
	if math.IsInf(v, 1) {
		return "unlimited"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeText prints one block per outcome. A missing route prints the start
// vertex with zero totals, followed by the reason.
func writeText(w io.Writer, p plan, outcomes []outcome) error {
	var b strings.Builder
	for _, o := range outcomes {
		path := []string{p.start}
		if o.result.Found {
			path = o.result.Path
		}
		fmt.Fprintf(&b, "[TASK %d] %s\n", o.task.number, o.task.title)
		fmt.Fprintf(&b, "Shortest path: %s.\n", strings.Join(path, "->"))
		fmt.Fprintf(&b, "Shortest distance: %s.\n", formatNumber(o.result.Distance))
		fmt.Fprintf(&b, "Total energy cost: %s.\n", formatNumber(o.result.Cost))
		switch o.reason {
		case reasonUnreachable:
			fmt.Fprintf(&b, "No route: %s is unreachable from %s.\n", p.goal, p.start)
		case reasonOverBudget:
			fmt.Fprintf(&b, "No route: every route from %s to %s exceeds the energy budget of %s.\n",
				p.start, p.goal, formatNumber(p.budget))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())

	return err
}

type jsonReport struct {
	Instance string       `json:"instance"`
	Start    string       `json:"start"`
	Goal     string       `json:"goal"`
	Budget   *float64     `json:"budget,omitempty"` // absent when unlimited
	Results  []jsonResult `json:"results"`
}

type jsonResult struct {
	Task      int       `json:"task"`
	Algorithm string    `json:"algorithm"`
	Budgeted  bool      `json:"budgeted"`
	Found     bool      `json:"found"`
	Path      []string  `json:"path"`
	Distance  float64   `json:"distance"`
	Cost      float64   `json:"cost"`
	Reason    string    `json:"reason,omitempty"`
	Stats     jsonStats `json:"stats"`
}

type jsonStats struct {
	Expanded int `json:"expanded"`
	Visited  int `json:"visited"`
	Pushed   int `json:"pushed"`
	Pruned   int `json:"pruned"`
}

func writeJSON(w io.Writer, p plan, outcomes []outcome) error {
	rep := jsonReport{
		Instance: p.inst.Name,
		Start:    p.start,
		Goal:     p.goal,
		Results:  make([]jsonResult, 0, len(outcomes)),
	}
	if !math.IsInf(p.budget, 1) {
		b := p.budget
		rep.Budget = &b
	}
	for _, o := range outcomes {
		rep.Results = append(rep.Results, jsonResult{
			Task:      o.task.number,
			Algorithm: o.task.use,
			Budgeted:  o.task.budgets,
			Found:     o.result.Found,
			Path:      o.result.Path,
			Distance:  o.result.Distance,
			Cost:      o.result.Cost,
			Reason:    o.reason,
			Stats: jsonStats{
				Expanded: o.result.Stats.Expanded,
				Visited:  o.result.Stats.Visited,
				Pushed:   o.result.Stats.Pushed,
				Pruned:   o.result.Stats.Pruned,
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}
