// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// impl_random_connected.go - implementation of RandomConnected(n).
//
// Model:
//   - base = max(1, ⌊n(n-1)/4⌋); draw k uniformly from [base, 2·base).
//   - k times: pick i≠j uniformly and place {i,j} with a fresh weight
//     (repeated pairs overwrite, so fewer than k distinct edges is normal).
//   - then, for every vertex i not yet joined to vertex 0, bridge i's
//     component to a random vertex of 0's component.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Result is symmetric, zero on the diagonal, and connected.
//
// Complexity:
//   - Time: O(n²) canvas + O(k·α(n)) sampling + O(n²) worst-case bridging.
//   - Space: O(n) for the DSU and the component-0 member list.

package builder

import "fmt"

const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 2
)

// RandomConnected returns a Constructor sampling a connected random graph
// over n vertices.
func RandomConnected(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		c.ensure(n)
		rng := cfg.rng
		sets := newDSU(n)

		base := n * (n - 1) / 4
		if base < 1 {
			base = 1
		}
		k := base + rng.Intn(base)

		for e := 0; e < k; e++ {
			i := rng.Intn(n)
			j := rng.Intn(n)
			for j == i {
				j = rng.Intn(n)
			}
			if err := c.link(methodRandomConnected, i, j, cfg.weightFn(rng)); err != nil {
				return err
			}
			sets.union(i, j)
		}

		// Members of vertex 0's component; bridges attach to one of them.
		var anchor []int
		for v := 0; v < n; v++ {
			if sets.find(v) == sets.find(0) {
				anchor = append(anchor, v)
			}
		}

		for i := 1; i < n; i++ {
			if sets.find(i) == sets.find(0) {
				continue
			}
			j := anchor[rng.Intn(len(anchor))]
			if err := c.link(methodRandomConnected, i, j, cfg.weightFn(rng)); err != nil {
				return err
			}
			// Absorb i's whole component into the anchor list.
			root := sets.find(i)
			for v := 0; v < n; v++ {
				if sets.find(v) == root {
					anchor = append(anchor, v)
				}
			}
			sets.union(i, j)
		}

		return nil
	}
}
