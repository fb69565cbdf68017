package traverse

import (
	"fmt"

	"github.com/katalvlaran/pathprobe/core"
)

// walker holds the mutable state of a single search.
type walker struct {
	graph *core.Graph
	opts  Options
	src   int
	dst   int
	st    *State
	front frontier
	steps []step // scratch buffer reused across relax calls
}

// Search explores g from src toward dst using strategy s and returns the
// populated state. It never stops early: the loop runs until the frontier
// is empty, even after the destination has been reached.
//
// Errors: ErrGraphNil, ErrVertexOutOfRange, ErrUnknownStrategy. An
// unreached destination is not an error here; see Result.Path.
func Search(g *core.Graph, s Strategy, src, dst int, opts ...Option) (*Result, error) {
	// 1) Validate inputs before allocating any state.
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if !g.Contains(src) || !g.Contains(dst) {
		return nil, fmt.Errorf("%w: source=%d destination=%d vertices=%d",
			ErrVertexOutOfRange, src, dst, n)
	}

	// 2) Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3) Pick the frontier for this strategy.
	f, err := newFrontier(s, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", err, int(s))
	}

	w := &walker{
		graph: g,
		opts:  o,
		src:   src,
		dst:   dst,
		st:    newState(n, src),
		front: f,
	}

	// 4) Seed with the source at cost 0 and drain.
	w.push(step{v: src, cost: 0})
	w.loop()

	return &Result{
		Strategy:    s,
		Source:      src,
		Destination: dst,
		State:       *w.st,
	}, nil
}

// DFS runs Search with the DepthFirst strategy.
func DFS(g *core.Graph, src, dst int, opts ...Option) (*Result, error) {
	return Search(g, DepthFirst, src, dst, opts...)
}

// BFS runs Search with the BreadthFirst strategy.
func BFS(g *core.Graph, src, dst int, opts ...Option) (*Result, error) {
	return Search(g, BreadthFirst, src, dst, opts...)
}

// UCS runs Search with the UniformCost strategy.
func UCS(g *core.Graph, src, dst int, opts ...Option) (*Result, error) {
	return Search(g, UniformCost, src, dst, opts...)
}

// loop pops until the frontier is empty, relaxing every non-destination entry.
func (w *walker) loop() {
	for w.front.len() > 0 {
		cur := w.pop()
		if cur.v == w.dst {
			continue
		}
		w.steps = relax(w.steps[:0], w.graph, w.st, cur.v, w.dst)
		for _, s := range w.steps {
			if w.opts.OnRelax != nil {
				w.opts.OnRelax(s.v, s.prev, Finite(s.cost))
			}
			w.push(s)
		}
	}
}

// push inserts s into the frontier and counts it.
func (w *walker) push(s step) {
	w.front.push(s)
	w.st.Pushes++
	if w.opts.OnPush != nil {
		w.opts.OnPush(s.v, s.cost)
	}
}

// pop removes the next entry and counts it.
func (w *walker) pop() step {
	s := w.front.pop()
	w.st.Pops++
	if w.opts.OnPop != nil {
		w.opts.OnPop(s.v)
	}

	return s
}
