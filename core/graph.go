package core

import "fmt"

// Build converts an n×n cost matrix into a Graph.
//
// For every row i, the adjacency entries are exactly the columns j with
// m[i][j] > 0, paired with that weight, in ascending j. Symmetry is not
// checked; an asymmetric matrix yields an asymmetric graph.
//
// Errors: ErrNoVertices, ErrNotSquare, ErrNegativeCost.
//
// Complexity: O(n²) time, O(n + E) space.
func Build(n int, m [][]int64) (*Graph, error) {
	// 1) Validate shape before allocating anything.
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoVertices, n)
	}
	if len(m) != n {
		return nil, fmt.Errorf("%w: %d rows for n=%d", ErrNotSquare, len(m), n)
	}

	g := &Graph{adj: make([][]Edge, n)}

	// 2) Scan rows; zero entries are "no edge".
	var i, j int
	var w int64
	for i = 0; i < n; i++ {
		row := m[i]
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns for n=%d", ErrNotSquare, i, len(row), n)
		}
		for j, w = range row {
			if w < 0 {
				return nil, fmt.Errorf("%w: m[%d][%d]=%d", ErrNegativeCost, i, j, w)
			}
			if w == 0 {
				continue
			}
			g.adj[i] = append(g.adj[i], Edge{To: j, Weight: w})
			g.edges++
		}
	}

	return g, nil
}

// Neighbors returns the outgoing edges of v, or nil if v is out of range.
// The returned slice is owned by the Graph and must not be modified.
func (g *Graph) Neighbors(v int) []Edge {
	if !g.Contains(v) {
		return nil
	}

	return g.adj[v]
}

// Weight returns the weight of the edge u→v and whether it exists.
func (g *Graph) Weight(u, v int) (int64, bool) {
	for _, e := range g.Neighbors(u) {
		if e.To == v {
			return e.Weight, true
		}
	}

	return 0, false
}

// Symmetric reports whether every edge u→v has a mirror v→u of equal weight.
// Load uses this only for diagnostics; nothing in the engine requires it.
func (g *Graph) Symmetric() bool {
	for u, row := range g.adj {
		for _, e := range row {
			if w, ok := g.Weight(e.To, u); !ok || w != e.Weight {
				return false
			}
		}
	}

	return true
}

// Matrix renders g back into a dense n×n cost matrix.
func (g *Graph) Matrix() [][]int64 {
	n := len(g.adj)
	m := make([][]int64, n)
	for u, row := range g.adj {
		m[u] = make([]int64, n)
		for _, e := range row {
			m[u][e.To] = e.Weight
		}
	}

	return m
}
