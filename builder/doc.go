// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// Package builder generates symmetric cost matrices for test fixtures and for
// the `pathprobe gen` command. Output feeds core.Build or core.WriteMatrix.
//
// What
//
//   - RandomConnected(n): the generator behind `pathprobe gen`. Samples
//     between ⌊n(n-1)/4⌋ and twice that many random undirected edges, then
//     bridges every component that is not connected to vertex 0 with one
//     more random edge, so the result is always connected.
//   - RandomSparse(n, p): each unordered pair {i,j} becomes an edge with
//     probability p (may be disconnected).
//   - Path(n), Cycle(n), Complete(n): deterministic topologies.
//
// Composition
//
//	BuildMatrix(opts, cons...) applies constructors in order to one shared
//	canvas over vertex indices 0..n-1; the canvas grows to the largest n any
//	constructor asks for. A later constructor overwrites the weight of an
//	edge an earlier one placed.
//
// Options
//
//   - WithSeed(s) / WithRand(r): RNG for stochastic constructors (required
//     for RandomConnected, and for RandomSparse when 0 < p < 1).
//   - WithWeightRange(lo, hi): uniform integer weights in [lo, hi].
//   - WithWeightFn(fn): arbitrary weight policy; must return values >= 1.
//
// Determinism
//
//	Same options, same seed and same constructor order produce the same matrix.
//
// Errors
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrInvalidWeightRange, ErrConstructFailed.
package builder
