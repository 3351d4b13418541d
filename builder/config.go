// SPDX-License-Identifier: MIT
// Package: routelab/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = prefixedID        ("v0","v1",...)
//   • rng        = nil                (pure/deterministic unless seeded)
//   • distanceFn = constant 1
//   • costFn     = constant 1
//   • maxStretch = 0.5                (geometric arcs up to 1.5× straight line)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Arc distance generator for non-geometric constructors.
	distanceFn func(*rand.Rand) float64
	// Arc cost generator for every constructor.
	costFn func(*rand.Rand) float64
	// Geometric arcs get distance = euclid × (1 + U[0,maxStretch)).
	maxStretch float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultConstWeight = 1.0
	defaultMaxStretch  = 0.5
	defaultIDPrefix    = "v"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       prefixedID,
		rng:        nil,
		distanceFn: constWeight(defaultConstWeight),
		costFn:     constWeight(defaultConstWeight),
		maxStretch: defaultMaxStretch,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// prefixedID renders an index as "v<i>".
func prefixedID(i int) string {
	return defaultIDPrefix + strconv.Itoa(i)
}

// constWeight returns a generator that ignores the RNG.
func constWeight(w float64) func(*rand.Rand) float64 {
	return func(*rand.Rand) float64 { return w }
}
