// Package traverse explores a core.Graph from a source to a destination
// vertex with one of three frontier disciplines and a single shared
// relaxation rule.
//
// What
//
//   - DFS (stack), BFS (FIFO queue) and UCS (min-heap keyed by the cost at
//     push time) all run the same loop: pop one entry, count it, and unless
//     it is the destination, relax its outgoing edges and push every vertex
//     whose cost improved.
//   - The relaxation rule accepts a candidate cost c for neighbor v only if
//     c < Cost[v] AND c < Cost[destination]. The second clause bounds the
//     search by the best destination cost found so far and is applied
//     identically to all three strategies.
//   - The destination is never expanded, but the loop keeps draining the
//     frontier until it is empty.
//   - Result.Path walks parent links back from the destination and reports
//     hop count and length, or ErrUnreachable.
//
// Sentinels
//
//	Costs and parent links use option types (Cost, Link) instead of
//	max-int / max-index markers. The zero Cost is infinite and the zero
//	Link is unset, so freshly allocated state needs no fill pass, and a
//	finite sum that would overflow int64 becomes infinite rather than
//	wrapping.
//
// State ownership
//
//	Every call to Search allocates its own State sized to the graph. Nothing
//	is cached between calls, so concurrent searches over one Graph are safe.
//
// Complexity (V = vertices, E = adjacency entries)
//
//   - Each push follows a strict cost improvement, so a vertex is pushed at
//     most once per distinct improving cost. UCS is O((V + E) log V) in
//     practice; DFS/BFS can re-expand vertices when later paths improve them.
//   - Memory: O(V) for state plus the frontier.
//
// Hooks
//
//   - WithOnPush(fn)   called for every frontier insertion, source included.
//   - WithOnPop(fn)    called for every frontier removal.
//   - WithOnRelax(fn)  called with the old and new cost on every accepted relaxation.
//
// Errors
//
//   - ErrGraphNil          graph pointer is nil.
//   - ErrVertexOutOfRange  source or destination not in [0, VertexCount).
//   - ErrUnknownStrategy   strategy value or name not recognized.
//   - ErrUnreachable       Path on a result whose destination was never reached.
//   - ErrBrokenChain       Path found a parent chain longer than the graph.
package traverse
