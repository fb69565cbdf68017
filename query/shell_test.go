package query_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathprobe/query"
)

func newShell(t *testing.T, graph, input string, opts ...query.ShellOption) (*query.Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r := query.NewRunner(loadGraph(t, graph), query.WithClock(stepClock(2*time.Microsecond)))
	return query.NewShell(r, strings.NewReader(input), &out, opts...), &out
}

func TestShell_Transcript(t *testing.T) {
	t.Parallel()
	sh, out := newShell(t, diamondSource, "ucs 0 3\nbfs 0 4\nfoo 1 2\n\nexit\nucs 0 1\n")

	require.NoError(t, sh.Run(context.Background()))

	want := "> 0 1 2 3\n" +
		"Number of hops: 3\n" +
		"Path length:    3\n" +
		"Pushes:         5\n" +
		"Pops:           5\n" +
		"Time taken:     2µs\n" +
		"> vertices out of range\n" +
		"> command not understood\n" +
		"> " +
		"> "
	assert.Equal(t, want, out.String())
}

func TestShell_UnreachableAndEOF(t *testing.T) {
	t.Parallel()
	sh, out := newShell(t, isolatedSource, "bfs 0 5\n")

	require.NoError(t, sh.Run(context.Background()))

	want := "> destination unreachable\n" +
		"Pushes:         5\n" +
		"Pops:           5\n" +
		"Time taken:     2µs\n" +
		"> "
	assert.Equal(t, want, out.String())
}

func TestShell_SeparateErrorStream(t *testing.T) {
	t.Parallel()
	var errOut bytes.Buffer
	sh, out := newShell(t, diamondSource, "ucs 9 9\nnope\n",
		query.WithPrompt("pp> "),
		query.WithErrorOutput(&errOut),
	)

	require.NoError(t, sh.Run(context.Background()))
	assert.Equal(t, "pp> pp> pp> ", out.String())
	assert.Equal(t, "vertices out of range\ncommand not understood\n", errOut.String())
}

func TestShell_GrammarBeforeRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line string
		want string
	}{
		{"foo 9 9", "command not understood\n"},
		{"bfs 9", "command not understood\n"},
		{"bfs 9 9", "vertices out of range\n"},
		{"all 0 9", "vertices out of range\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.line, func(t *testing.T) {
			t.Parallel()
			var errOut bytes.Buffer
			sh, _ := newShell(t, diamondSource, tc.line+"\n", query.WithErrorOutput(&errOut))

			require.NoError(t, sh.Run(context.Background()))
			assert.Equal(t, tc.want, errOut.String())
		})
	}
}

func TestShell_HelpAndCompare(t *testing.T) {
	t.Parallel()
	sh, out := newShell(t, diamondSource, "help\nall 0 3\nquit\n")

	require.NoError(t, sh.Run(context.Background()))
	s := out.String()
	assert.Contains(t, s, "uniform-cost search")
	for _, name := range []string{"STRATEGY", "dfs", "bfs", "ucs", "0 1 2 3"} {
		assert.Contains(t, s, name)
	}
}

func TestShell_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sh, out := newShell(t, diamondSource, "ucs 0 3\n")

	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
}
