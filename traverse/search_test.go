package traverse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathprobe/core"
	"github.com/katalvlaran/pathprobe/traverse"
)

// buildDiamond returns 0-1 (1), 1-2 (1), 0-2 (5), 2-3 (1).
func buildDiamond(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.Build(4, [][]int64{
		{0, 1, 5, 0},
		{1, 0, 1, 0},
		{5, 1, 0, 1},
		{0, 0, 1, 0},
	})
	require.NoError(t, err)

	return g
}

// buildWithIsolated returns a 6-vertex graph whose vertex 5 has no edges.
func buildWithIsolated(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.Build(6, [][]int64{
		{0, 2, 0, 0, 0, 0},
		{2, 0, 3, 0, 0, 0},
		{0, 3, 0, 1, 0, 0},
		{0, 0, 1, 0, 4, 0},
		{0, 0, 0, 4, 0, 0},
		{0, 0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	return g
}

// randomSymmetric samples an undirected graph with weights in [1,9].
func randomSymmetric(t testing.TB, rng *rand.Rand, n int, p float64) *core.Graph {
	t.Helper()
	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				w := int64(rng.Intn(9) + 1)
				m[i][j], m[j][i] = w, w
			}
		}
	}
	g, err := core.Build(n, m)
	require.NoError(t, err)

	return g
}

func TestSearch_Errors(t *testing.T) {
	g := buildDiamond(t)

	_, err := traverse.Search(nil, traverse.UniformCost, 0, 1)
	assert.ErrorIs(t, err, traverse.ErrGraphNil)

	for _, pair := range [][2]int{{4, 0}, {0, 4}, {-1, 2}, {9, 9}} {
		res, err := traverse.Search(g, traverse.BreadthFirst, pair[0], pair[1])
		assert.Nil(t, res)
		assert.ErrorIs(t, err, traverse.ErrVertexOutOfRange, "pair %v", pair)
	}

	_, err = traverse.Search(g, traverse.Strategy(42), 0, 3)
	assert.ErrorIs(t, err, traverse.ErrUnknownStrategy)
}

func TestSearch_OutOfRangeRunsNoHooks(t *testing.T) {
	g := buildDiamond(t)
	calls := 0
	_, err := traverse.UCS(g, 0, 4,
		traverse.WithOnPush(func(int, int64) { calls++ }),
		traverse.WithOnPop(func(int) { calls++ }),
	)
	require.ErrorIs(t, err, traverse.ErrVertexOutOfRange)
	assert.Zero(t, calls)
}

func TestSearch_DiamondAllStrategies(t *testing.T) {
	g := buildDiamond(t)

	tests := []struct {
		strategy   traverse.Strategy
		wantPushes int
	}{
		{traverse.DepthFirst, 6},
		{traverse.BreadthFirst, 5},
		{traverse.UniformCost, 5},
	}
	for _, tc := range tests {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			res, err := traverse.Search(g, tc.strategy, 0, 3)
			require.NoError(t, err)
			require.True(t, res.Reached())

			path, err := res.Path()
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 3}, path.Vertices)
			assert.Equal(t, 3, path.Hops)
			assert.Equal(t, int64(3), path.Length)
			assert.Equal(t, tc.wantPushes, res.Pushes)
			assert.Equal(t, tc.wantPushes, res.Pops)
		})
	}
}

func TestSearch_SourceIsDestination(t *testing.T) {
	g := buildDiamond(t)
	for _, s := range traverse.Strategies() {
		for v := 0; v < g.VertexCount(); v++ {
			res, err := traverse.Search(g, s, v, v)
			require.NoError(t, err)

			path, err := res.Path()
			require.NoError(t, err)
			assert.Equal(t, 0, path.Hops, "%s %d", s, v)
			assert.Equal(t, int64(0), path.Length, "%s %d", s, v)
			assert.Equal(t, []int{v}, path.Vertices)
			// the source is the destination, so it is never expanded
			assert.Equal(t, 1, res.Pushes)
			assert.Equal(t, 1, res.Pops)
		}
	}
}

func TestSearch_IsolatedVertexUnreachable(t *testing.T) {
	g := buildWithIsolated(t)
	for _, s := range traverse.Strategies() {
		res, err := traverse.Search(g, s, 0, 5)
		require.NoError(t, err)
		assert.False(t, res.Reached())

		_, err = res.Path()
		assert.ErrorIs(t, err, traverse.ErrUnreachable, s.String())
		assert.Equal(t, res.Pushes, res.Pops)
		// every vertex in 0's component was still explored
		for v := 0; v < 5; v++ {
			assert.True(t, res.Cost[v].IsFinite(), "vertex %d", v)
		}
	}
}

func TestSearch_DestinationBoundPrunes(t *testing.T) {
	// 0-1 (1), 0-2 (5), 2-3 (1): once 1 is reached at cost 1, no candidate
	// costing 1 or more is admitted, so 2 and 3 are never explored.
	g, err := core.Build(4, [][]int64{
		{0, 1, 5, 0},
		{1, 0, 0, 0},
		{5, 0, 0, 1},
		{0, 0, 1, 0},
	})
	require.NoError(t, err)

	for _, s := range traverse.Strategies() {
		res, err := traverse.Search(g, s, 0, 1)
		require.NoError(t, err)
		assert.False(t, res.Cost[2].IsFinite(), s.String())
		assert.False(t, res.Cost[3].IsFinite(), s.String())
		assert.Equal(t, 2, res.Pushes, s.String())
	}
}

func TestSearch_Instrumentation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		g := randomSymmetric(t, rng, 12, 0.3)
		src, dst := rng.Intn(12), rng.Intn(12)

		for _, s := range traverse.Strategies() {
			var pushes, pops int
			last := make(map[int]traverse.Cost)
			res, err := traverse.Search(g, s, src, dst,
				traverse.WithOnPush(func(int, int64) { pushes++ }),
				traverse.WithOnPop(func(int) { pops++ }),
				traverse.WithOnRelax(func(v int, prev, next traverse.Cost) {
					// costs only ever decrease
					assert.True(t, next.Less(prev), "v=%d %s -> %s", v, prev, next)
					if seen, ok := last[v]; ok {
						assert.True(t, next.Less(seen))
					}
					last[v] = next
				}),
			)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Pushes, res.Pops)
			assert.Equal(t, pushes, res.Pushes)
			assert.Equal(t, pops, res.Pops)
			for v, c := range last {
				assert.Equal(t, c, res.Cost[v])
			}
		}
	}
}

func TestSearch_UniformCostNeverWorse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		g := randomSymmetric(t, rng, 15, 0.25)
		src, dst := rng.Intn(15), rng.Intn(15)

		ucs, err := traverse.UCS(g, src, dst)
		require.NoError(t, err)
		for _, other := range []traverse.Strategy{traverse.DepthFirst, traverse.BreadthFirst} {
			res, err := traverse.Search(g, other, src, dst)
			require.NoError(t, err)
			assert.Equal(t, ucs.Reached(), res.Reached())
			if !ucs.Reached() {
				continue
			}
			a, _ := ucs.Cost[dst].Value()
			b, _ := res.Cost[dst].Value()
			assert.LessOrEqual(t, a, b, "trial %d %s", trial, other)
		}
	}
}

func TestPath_WeightsSumToCost(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 40; trial++ {
		g := randomSymmetric(t, rng, 10, 0.35)
		src, dst := rng.Intn(10), rng.Intn(10)
		for _, s := range traverse.Strategies() {
			res, err := traverse.Search(g, s, src, dst)
			require.NoError(t, err)
			path, err := res.Path()
			if !res.Reached() {
				assert.ErrorIs(t, err, traverse.ErrUnreachable)
				continue
			}
			require.NoError(t, err)

			var sum int64
			for i := 1; i < len(path.Vertices); i++ {
				w, ok := g.Weight(path.Vertices[i-1], path.Vertices[i])
				require.True(t, ok)
				sum += w
			}
			want, _ := res.Cost[dst].Value()
			assert.Equal(t, want, sum)
			assert.Equal(t, want, path.Length)
			assert.Equal(t, len(path.Vertices)-1, path.Hops)
			assert.Equal(t, src, path.Vertices[0])
			assert.Equal(t, dst, path.Vertices[path.Hops])
		}
	}
}

func TestPath_BrokenChain(t *testing.T) {
	res := &traverse.Result{
		Source:      0,
		Destination: 2,
		State: traverse.State{
			Cost:   []traverse.Cost{traverse.Finite(0), traverse.Finite(1), traverse.Finite(2)},
			Parent: []traverse.Link{{}, traverse.LinkTo(2), traverse.LinkTo(1)},
		},
	}
	_, err := res.Path()
	assert.ErrorIs(t, err, traverse.ErrBrokenChain)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want traverse.Strategy
	}{
		{"dfs", traverse.DepthFirst},
		{"depth-first", traverse.DepthFirst},
		{"BFS", traverse.BreadthFirst},
		{" breadth-first ", traverse.BreadthFirst},
		{"ucs", traverse.UniformCost},
		{"Uniform-Cost", traverse.UniformCost},
	}
	for _, tc := range tests {
		got, err := traverse.ParseStrategy(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := traverse.ParseStrategy("astar")
	assert.ErrorIs(t, err, traverse.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(7)", traverse.Strategy(7).String())
}
