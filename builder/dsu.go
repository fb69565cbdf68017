// SPDX-License-Identifier: MIT
// Package: pathprobe/builder
//
// dsu.go - disjoint-set forest over vertex indices, used to track components
// while RandomConnected places edges.

package builder

// dsu is a union-find with path compression and union by rank.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of v's set.
func (d *dsu) find(v int) int {
	for d.parent[v] != v {
		// Path compression: point v at its grandparent.
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}

	return v
}

// union merges the sets of a and b; reports false if already merged.
func (d *dsu) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}
