package traverse

import (
	"math"
	"strconv"
)

// Cost is a path cost that is either finite or infinite.
// The zero value is infinite.
type Cost struct {
	v      int64
	finite bool
}

// Finite returns the finite cost v.
func Finite(v int64) Cost { return Cost{v: v, finite: true} }

// Infinite returns the infinite cost; equivalent to Cost{}.
func Infinite() Cost { return Cost{} }

// Value returns the cost and true, or 0 and false if c is infinite.
func (c Cost) Value() (int64, bool) { return c.v, c.finite }

// IsFinite reports whether c is finite.
func (c Cost) IsFinite() bool { return c.finite }

// Less reports whether c is strictly cheaper than o. Infinity is never less
// than anything, and every finite cost is less than infinity.
func (c Cost) Less(o Cost) bool {
	if !c.finite {
		return false
	}
	if !o.finite {
		return true
	}

	return c.v < o.v
}

// Add returns c + w for w >= 0. Infinite stays infinite, and a sum that
// would overflow int64 saturates to infinite.
func (c Cost) Add(w int64) Cost {
	if !c.finite {
		return c
	}
	if w > 0 && c.v > math.MaxInt64-w {
		return Cost{}
	}

	return Finite(c.v + w)
}

// String renders the cost, with "inf" for infinity.
func (c Cost) String() string {
	if !c.finite {
		return "inf"
	}

	return strconv.FormatInt(c.v, 10)
}

// Link is an optional parent pointer. The zero value is unset.
type Link struct {
	v   int
	set bool
}

// LinkTo returns a Link pointing at vertex v.
func LinkTo(v int) Link { return Link{v: v, set: true} }

// Vertex returns the linked vertex and true, or -1 and false if unset.
func (l Link) Vertex() (int, bool) {
	if !l.set {
		return -1, false
	}

	return l.v, true
}
