package traverse

import "fmt"

// Path reconstructs the route from Source to Destination by walking parent
// links backward from the destination.
//
// Hops counts edges walked; Length equals Cost[Destination]. When
// Source == Destination the path is the single vertex with zero hops and
// zero length. If the destination was never reached, Path returns
// ErrUnreachable without touching the parent chain.
func (r *Result) Path() (Path, error) {
	if r.Source == r.Destination {
		return Path{Vertices: []int{r.Source}}, nil
	}
	length, ok := r.Cost[r.Destination].Value()
	if !ok {
		return Path{}, fmt.Errorf("%w: %d from %d", ErrUnreachable, r.Destination, r.Source)
	}

	// Walk dst → src; a chain longer than n vertices cannot be a simple path.
	n := len(r.Parent)
	rev := []int{r.Destination}
	cur := r.Destination
	for cur != r.Source {
		prev, set := r.Parent[cur].Vertex()
		if !set || len(rev) > n {
			return Path{}, fmt.Errorf("%w: stuck at %d after %d hops", ErrBrokenChain, cur, len(rev)-1)
		}
		rev = append(rev, prev)
		cur = prev
	}

	// Present source → destination.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return Path{Vertices: rev, Hops: len(rev) - 1, Length: length}, nil
}
