// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                (pure/deterministic unless seeded)
//   • weightFn = constant DefaultEdgeWeight

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn func(*rand.Rand) int64
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: ConstantWeight(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
