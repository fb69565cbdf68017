// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// impl_cycle.go - implementation of Cycle(n): a Path closed by {n-1,0}.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings would need a self-loop
//     or a duplicate edge.
//   - Exactly n edges.

package builder

import "fmt"

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor for a simple ring over n vertices.
func Cycle(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}

		c.ensure(n)
		for i := 0; i < n; i++ {
			if err := c.link(methodCycle, i, (i+1)%n, cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
