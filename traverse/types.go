package traverse

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for traversal and path reconstruction.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Search.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrVertexOutOfRange indicates a source or destination outside [0, n).
	ErrVertexOutOfRange = errors.New("traverse: vertex out of range")

	// ErrUnknownStrategy indicates an unrecognized Strategy value or name.
	ErrUnknownStrategy = errors.New("traverse: unknown strategy")

	// ErrUnreachable indicates the frontier drained without reaching the destination.
	ErrUnreachable = errors.New("traverse: destination unreachable")

	// ErrBrokenChain indicates a parent chain that does not lead back to the
	// source within VertexCount steps.
	ErrBrokenChain = errors.New("traverse: broken parent chain")
)

// Strategy selects the frontier discipline.
type Strategy int

const (
	// DepthFirst expands the most recently pushed vertex first (LIFO stack).
	DepthFirst Strategy = iota

	// BreadthFirst expands the earliest pushed vertex first (FIFO queue).
	BreadthFirst

	// UniformCost expands the cheapest pending entry first (min-heap by push-time cost).
	UniformCost
)

// Strategies lists every supported strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{DepthFirst, BreadthFirst, UniformCost}
}

// String returns the long name: "depth-first", "breadth-first" or "uniform-cost".
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	case UniformCost:
		return "uniform-cost"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Short returns the command-line mnemonic: "dfs", "bfs" or "ucs".
func (s Strategy) Short() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	case UniformCost:
		return "ucs"
	default:
		return "?"
	}
}

// ParseStrategy accepts the short or long name of a strategy, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if key == s.Short() || key == s.String() {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds the instrumentation hooks for one search. All hooks are
// optional and are called synchronously from the search loop.
type Options struct {
	// OnPush is called for every frontier insertion with the vertex and its
	// cost at push time.
	OnPush func(v int, cost int64)

	// OnPop is called for every frontier removal.
	OnPop func(v int)

	// OnRelax is called for every accepted relaxation with the vertex's
	// previous and new cost.
	OnRelax func(v int, prev, next Cost)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnPush installs a frontier-insertion hook.
func WithOnPush(fn func(v int, cost int64)) Option {
	return func(o *Options) {
		o.OnPush = fn
	}
}

// WithOnPop installs a frontier-removal hook.
func WithOnPop(fn func(v int)) Option {
	return func(o *Options) {
		o.OnPop = fn
	}
}

// WithOnRelax installs a hook observing every cost improvement.
func WithOnRelax(fn func(v int, prev, next Cost)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// State is the per-search exploration state. It is allocated by Search and
// owned by the returned Result.
type State struct {
	// Cost[v] is the best known cost from the source to v.
	Cost []Cost

	// Parent[v] is the vertex from which v was last improved.
	Parent []Link

	// Pushes counts frontier insertions, including the source.
	Pushes int

	// Pops counts frontier removals.
	Pops int
}

// newState allocates state for n vertices with only src at cost 0.
func newState(n, src int) *State {
	st := &State{
		Cost:   make([]Cost, n), // zero Cost is infinite
		Parent: make([]Link, n), // zero Link is unset
	}
	st.Cost[src] = Finite(0)

	return st
}

// Result is the outcome of one Search.
type Result struct {
	Strategy    Strategy
	Source      int
	Destination int
	State
}

// Reached reports whether the destination has a finite cost.
func (r *Result) Reached() bool {
	return r.Cost[r.Destination].IsFinite()
}

// Path is a reconstructed route.
type Path struct {
	// Vertices lists the route from source to destination inclusive.
	Vertices []int

	// Hops is the number of edges on the route (len(Vertices)-1).
	Hops int

	// Length is the sum of edge weights along the route.
	Length int64
}
