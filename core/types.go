package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and loading.
var (
	// ErrMalformedSource indicates that a graph source could not be opened,
	// tokenized, or interpreted as a cost matrix.
	ErrMalformedSource = errors.New("core: malformed graph source")

	// ErrNoVertices indicates a vertex count that is zero or negative.
	ErrNoVertices = fmt.Errorf("%w: vertex count must be positive", ErrMalformedSource)

	// ErrNotSquare indicates a matrix whose shape does not match the vertex count.
	ErrNotSquare = fmt.Errorf("%w: matrix is not n×n", ErrMalformedSource)

	// ErrNegativeCost indicates a negative matrix entry.
	ErrNegativeCost = fmt.Errorf("%w: negative cost", ErrMalformedSource)
)

// Edge is one outgoing adjacency entry: the target vertex and a positive weight.
type Edge struct {
	// To is the index of the target vertex.
	To int

	// Weight is the traversal cost; always > 0 for edges produced by Build.
	Weight int64
}

// Graph is an immutable adjacency-list graph over vertices 0..n-1.
//
// adj[v] holds v's outgoing edges in ascending target order. The slices are
// shared with callers of Neighbors and must be treated as read-only.
type Graph struct {
	adj   [][]Edge
	edges int
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of stored adjacency entries. An undirected
// edge mirrored in both rows counts twice.
func (g *Graph) EdgeCount() int { return g.edges }

// Contains reports whether v is a valid vertex index.
func (g *Graph) Contains(v int) bool { return v >= 0 && v < len(g.adj) }
