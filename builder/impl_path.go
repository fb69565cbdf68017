// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// impl_path.go - implementation of Path(n): 0–1–2–…–(n-1).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Exactly n-1 edges {i,i+1}.

package builder

import "fmt"

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor for a simple chain over n vertices.
func Path(n int) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}

		c.ensure(n)
		for i := 0; i+1 < n; i++ {
			if err := c.link(methodPath, i, i+1, cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
