// SPDX-License-Identifier: MIT
// Package: routelab/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDistanceFn overrides the arc distance generator used by RandomDAG.
// The function receives the (possibly nil) RNG and must return a
// non-negative value. Panics on nil.
func WithDistanceFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.distanceFn = fn
	}
}

// WithCostFn overrides the arc cost generator. Panics on nil.
func WithCostFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithMaxStretch bounds how much longer than the straight line a geometric
// arc may be: distance ∈ [euclid, euclid×(1+s)). Panics on s < 0 or NaN.
func WithMaxStretch(s float64) BuilderOption {
	if s < 0 || math.IsNaN(s) {
		panic("builder: WithMaxStretch(negative)")
	}
	return func(c *builderConfig) {
		c.maxStretch = s
	}
}

// UniformWeight returns a generator drawing uniformly from [lo, hi).
// With a nil RNG it returns lo. Panics unless 0 ≤ lo ≤ hi.
func UniformWeight(lo, hi float64) func(*rand.Rand) float64 {
	if lo < 0 || hi < lo {
		panic("builder: UniformWeight bounds")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}
		return lo + r.Float64()*(hi-lo)
	}
}

// IntWeight returns a generator drawing integers uniformly from [lo, hi].
// Integral weights keep sums exact, which golden tests rely on.
// With a nil RNG it returns lo. Panics unless 0 ≤ lo ≤ hi.
func IntWeight(lo, hi int) func(*rand.Rand) float64 {
	if lo < 0 || hi < lo {
		panic("builder: IntWeight bounds")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return float64(lo)
		}
		return float64(lo + r.Intn(hi-lo+1))
	}
}
