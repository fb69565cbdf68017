package traverse

import "github.com/katalvlaran/pathprobe/core"

// step is one frontier entry: a vertex and its cost when it was pushed.
// prev carries the cost the vertex had before this improvement, for OnRelax.
type step struct {
	v    int
	cost int64
	prev Cost
}

// relax applies the shared relaxation rule to every outgoing edge of cur and
// appends one step per accepted improvement to steps.
//
// A candidate c = Cost[cur] + w for neighbor next is accepted only if
//
//	c < Cost[next]  (strict improvement), and
//	c < Cost[dst]   (cannot be beaten by the destination already found).
//
// Cost[dst] is re-read for every edge, so an improvement to dst made earlier
// in the same row tightens the bound for the rest of that row. On accept,
// Cost[next] and Parent[next] are updated together.
//
// The caller must not invoke relax when cur == dst.
func relax(steps []step, g *core.Graph, st *State, cur, dst int) []step {
	base := st.Cost[cur]
	for _, e := range g.Neighbors(cur) {
		cand := base.Add(e.Weight)
		if !cand.Less(st.Cost[e.To]) || !cand.Less(st.Cost[dst]) {
			continue
		}
		prev := st.Cost[e.To]
		st.Cost[e.To] = cand
		st.Parent[e.To] = LinkTo(cur)
		c, _ := cand.Value()
		steps = append(steps, step{v: e.To, cost: c, prev: prev})
	}

	return steps
}
