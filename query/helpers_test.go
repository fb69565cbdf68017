package query_test

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathprobe/core"
)

// diamondSource is the 4-vertex scenario graph: the cheapest 0→3 route is
// 0 1 2 3 with length 3, beating the direct 0–2 edge of weight 5.
const diamondSource = "4\n0 1 5 0\n1 0 1 0\n5 1 0 1\n0 0 1 0\n"

// isolatedSource is a 6-vertex chain 0–1–2–3–4 plus an isolated vertex 5.
const isolatedSource = `6
0 2 0 0 0 0
2 0 3 0 0 0
0 3 0 1 0 0
0 0 1 0 4 0
0 0 0 4 0 0
0 0 0 0 0 0
`

func loadGraph(t testing.TB, src string) *core.Graph {
	t.Helper()
	g, err := core.Load(strings.NewReader(src))
	require.NoError(t, err)

	return g
}

// stepClock advances by step on every call, so each traversal measures
// exactly step as long as no other run shares the clock concurrently.
func stepClock(step time.Duration) func() time.Time {
	var ticks atomic.Int64
	base := time.Unix(0, 0)
	return func() time.Time {
		return base.Add(time.Duration(ticks.Add(1)) * step)
	}
}
