// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildMatrix(bopts, cons...). Resolves cfg, runs cons in order.
//   • Public factories are declared in impl_*.go next to their implementation.
//   • Determinism: same options, seed and constructor order ⇒ identical matrices.
//   • Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathprobe/core"
)

// Constructor draws a topology on the shared canvas using the resolved
// builderConfig. Constructors validate parameters before touching the canvas.
type Constructor func(c *canvas, cfg builderConfig) error

// BuildMatrix resolves bopts and applies all constructors in order to an
// empty canvas, returning the resulting symmetric cost matrix.
// The first constructor error is wrapped with "BuildMatrix: %w" and returned.
//
// Complexity: Σ cost of each constructor; the canvas holds O(n²) int64.
func BuildMatrix(bopts []BuilderOption, cons ...Constructor) ([][]int64, error) {
	cfg := newBuilderConfig(bopts...)
	c := &canvas{}

	for i, con := range cons {
		if con == nil {
			return nil, fmt.Errorf("BuildMatrix: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := con(c, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}

	return c.m, nil
}

// BuildGraph is BuildMatrix followed by core.Build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	m, err := BuildMatrix(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(len(m), m)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
