// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// weight_fn.go - edge-weight policies.

package builder

import "math/rand"

// DefaultEdgeWeight is the weight used when no weight option is given.
const DefaultEdgeWeight int64 = 1

// ConstantWeight returns a policy that always yields w.
func ConstantWeight(w int64) func(*rand.Rand) int64 {
	return func(*rand.Rand) int64 {
		return w
	}
}

// UniformWeight returns a policy sampling uniformly from [lo, hi] inclusive.
// With a nil RNG it yields lo, keeping deterministic constructors pure.
func UniformWeight(lo, hi int64) func(*rand.Rand) int64 {
	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}
