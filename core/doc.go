// Package core provides the immutable weighted graph that every pathprobe
// query runs against.
//
// A Graph G = (V,E) is addressed purely by position: vertices are the
// integers 0..VertexCount()-1 and each vertex owns an ordered slice of
// outgoing Edge values {To, Weight}. Undirected graphs are represented by
// mirroring every edge in both endpoint rows; the builder does not enforce
// that mirroring, it copies whatever the cost matrix says.
//
// What
//
//   - Build(n, m) turns an n×n cost matrix into adjacency rows. Entry
//     m[i][j] > 0 becomes Edge{To: j, Weight: m[i][j]} in row i; zero means
//     "no edge" and is never stored.
//   - Load / LoadFile parse the text source format:
//
//     n
//     c(0,0) c(0,1) ... c(0,n-1)
//     ...
//     c(n-1,0)      ... c(n-1,n-1)
//
//     Tokens may be separated by any whitespace.
//   - WriteMatrix emits the same format so generated graphs round-trip.
//
// Why
//
//   - Index-addressed rows give O(1) neighbor access with no locking; the
//     Graph is never mutated after Build, so concurrent readers are safe.
//
// Complexity
//
//   - Build: O(n²) time, O(n + E) space.
//   - Neighbors: O(1).
//   - Weight(u,v): O(deg(u)).
//
// Errors
//
//   - ErrMalformedSource  the source could not be opened or parsed.
//   - ErrNoVertices       n <= 0 (wraps ErrMalformedSource).
//   - ErrNotSquare        row or column count differs from n (wraps ErrMalformedSource).
//   - ErrNegativeCost     a matrix entry is negative (wraps ErrMalformedSource).
package core
