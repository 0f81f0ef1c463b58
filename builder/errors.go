// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using %w.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...) and WeightFn factories.

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the minimum for a constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was run without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNegativeWeight indicates that a WeightFn produced a negative weight.
var ErrNegativeWeight = errors.New("builder: negative weight produced")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
