// SPDX-License-Identifier: MIT
// Package: routelab/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidRadius indicates a non-positive or NaN connection radius.
var ErrInvalidRadius = errors.New("builder: radius must be positive")

// ErrNeedRandSource indicates that a stochastic constructor needs a non-nil
// *rand.Rand (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor is incompatible with the
// graph's mode flags (e.g. RandomDAG on a mirrored graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a construction step that could not complete
// (nil constructor, rejected arc).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownInstance indicates Named was asked for an unregistered instance.
var ErrUnknownInstance = errors.New("builder: unknown instance")
