// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Callers holding user input should check ValidateWeightRange first.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function
// receives the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange draws weights uniformly from [lo, hi].
// Panics if ValidateWeightRange(lo, hi) fails.
func WithWeightRange(lo, hi int64) BuilderOption {
	if err := ValidateWeightRange(lo, hi); err != nil {
		panic(err.Error())
	}
	return WithWeightFn(UniformWeight(lo, hi))
}

// ValidateWeightRange reports ErrInvalidWeightRange unless 1 <= lo <= hi.
func ValidateWeightRange(lo, hi int64) error {
	if lo < 1 || hi < lo {
		return fmt.Errorf("%w: [%d,%d]", ErrInvalidWeightRange, lo, hi)
	}

	return nil
}
