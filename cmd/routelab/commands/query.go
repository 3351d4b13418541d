package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/paingkl/routelab/builder"
	"github.com/paingkl/routelab/core"
)

const defaultInstance = "toy"

// errBadNear reports a --near value that is not "x,y".
var errBadNear = errors.New("near must be two finite numbers x,y")

// Query is the on-disk form of a search request.
//
//	instance: grid
//	start: r0c0
//	goal: r9c9
//	budget: 40
//	near: [4.5, 3]
//	algorithm: astar
//
// Algorithm narrows the tasks command to one search; the single-search
// commands ignore it.
type Query struct {
	Instance  string    `yaml:"instance" json:"instance"`
	Start     string    `yaml:"start" json:"start"`
	Goal      string    `yaml:"goal" json:"goal"`
	Budget    *float64  `yaml:"budget" json:"budget"`
	Near      []float64 `yaml:"near" json:"near"`
	Algorithm string    `yaml:"algorithm" json:"algorithm"`
}

// loadQuery reads a query from a YAML or JSON file.
func loadQuery(path string) (Query, error) {
	var q Query
	data, err := os.ReadFile(path)
	if err != nil {
		return q, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &q); err != nil {
			return q, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &q); err != nil {
			return q, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &q); err != nil {
			if err := json.Unmarshal(data, &q); err != nil {
				return q, fmt.Errorf("failed to parse file (tried YAML and JSON): %w", err)
			}
		}
	}

	return q, nil
}

// parseNear parses "x,y".
func parseNear(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", errBadNear, s)
	}
	out := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q", errBadNear, s)
		}
		out[i] = v
	}

	return out, nil
}

// plan is a fully resolved query: a built network and the search inputs.
type plan struct {
	inst      builder.Instance
	start     string
	goal      string
	budget    float64
	algorithm string
}

// resolve merges the query file and the flags (flags win), builds the
// network and applies defaults from it.
func resolve(cmd *cobra.Command, flags *globalFlags, logger *slog.Logger) (plan, error) {
	var q Query
	if flags.file != "" {
		var err error
		if q, err = loadQuery(flags.file); err != nil {
			return plan{}, err
		}
	}

	set := cmd.Flags().Changed
	if set("instance") {
		q.Instance = flags.instance
	}
	if set("start") {
		q.Start = flags.start
	}
	if set("goal") {
		q.Goal = flags.goal
	}
	if set("budget") {
		b := flags.budget
		q.Budget = &b
	}
	if set("near") {
		near, err := parseNear(flags.near)
		if err != nil {
			return plan{}, err
		}
		q.Near = near
	}
	if q.Instance == "" {
		q.Instance = defaultInstance
	}

	inst, err := builder.Named(q.Instance)
	if err != nil {
		return plan{}, err
	}
	p := plan{inst: inst, start: inst.Start, goal: inst.Goal, budget: inst.Budget, algorithm: q.Algorithm}
	if q.Start != "" {
		p.start = q.Start
	}
	if q.Goal != "" {
		p.goal = q.Goal
	}
	if q.Budget != nil {
		p.budget = *q.Budget
	}

	if q.Near != nil {
		if len(q.Near) != 2 {
			return plan{}, fmt.Errorf("%w: got %d numbers", errBadNear, len(q.Near))
		}
		loc, err := core.NewLocator(inst.Graph)
		if err != nil {
			return plan{}, fmt.Errorf("near: %w", err)
		}
		id, err := loc.Nearest(q.Near[0], q.Near[1])
		if err != nil {
			return plan{}, fmt.Errorf("near: %w", err)
		}
		logger.Debug("snapped start", "x", q.Near[0], "y", q.Near[1], "vertex", id)
		p.start = id
	}

	logger.Debug("query resolved",
		"instance", inst.Name,
		"vertices", inst.Graph.VertexCount(),
		"arcs", inst.Graph.EdgeCount(),
		"start", p.start,
		"goal", p.goal,
		"budget", p.budget,
	)

	return p, nil
}
