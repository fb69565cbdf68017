// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// impl_complete.go - implementation of Complete(n): every pair {i,j}, i<j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Exactly n(n-1)/2 edges.

package builder

import "fmt"

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}

		c.ensure(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := c.link(methodComplete, i, j, cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
