// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w, never by editing sentinels.
//   • Constructors never panic; option constructors (WithX) may.

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeightRange indicates a weight range with lo < 1 or hi < lo.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrConstructFailed indicates a nil constructor or a weight policy that
// produced a non-positive weight.
var ErrConstructFailed = errors.New("builder: construction failed")
