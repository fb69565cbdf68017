// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model:
//   - Erdős–Rényi-like: each unordered pair {i,j}, i<j, becomes an edge
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required only when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trial order is i asc, then j asc; fixed seed ⇒ fixed matrix.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		c.ensure(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p < probMax && cfg.rng.Float64() >= p:
					continue
				}
				if err := c.link(methodRandomSparse, i, j, cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
