// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// canvas.go - growable symmetric cost matrix shared by constructors.
//
// Contract:
//   • Diagonal stays 0 (no self-loops).
//   • link writes both (i,j) and (j,i); a later write overwrites.

package builder

import "fmt"

// canvas is the mutable matrix constructors draw on.
type canvas struct {
	m [][]int64
}

// size returns the current vertex count.
func (c *canvas) size() int {
	return len(c.m)
}

// ensure grows the canvas to at least n vertices, keeping placed edges.
func (c *canvas) ensure(n int) {
	if n <= len(c.m) {
		return
	}
	for i := range c.m {
		row := make([]int64, n)
		copy(row, c.m[i])
		c.m[i] = row
	}
	for i := len(c.m); i < n; i++ {
		c.m = append(c.m, make([]int64, n))
	}
}

// link places an undirected edge {i,j} with weight w.
func (c *canvas) link(method string, i, j int, w int64) error {
	if w < 1 {
		return fmt.Errorf("%s: weight %d on {%d,%d}: %w", method, w, i, j, ErrConstructFailed)
	}
	c.m[i][j] = w
	c.m[j][i] = w

	return nil
}
