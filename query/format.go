package query

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// WriteResult writes the result block for r:
//
//	0 1 2 3
//	Number of hops: 3
//	Path length:    3
//	Pushes:         5
//	Pops:           5
//	Time taken:     2.1µs
//
// An unreached destination replaces the first three lines with
// "destination unreachable".
func WriteResult(w io.Writer, r *Result) error {
	var b strings.Builder
	if r.Reachable {
		b.WriteString(joinPath(r.Path))
		b.WriteByte('\n')
		fmt.Fprintf(&b, "Number of hops: %d\n", r.Hops)
		fmt.Fprintf(&b, "Path length:    %d\n", r.Length)
	} else {
		b.WriteString("destination unreachable\n")
	}
	fmt.Fprintf(&b, "Pushes:         %d\n", r.Pushes)
	fmt.Fprintf(&b, "Pops:           %d\n", r.Pops)
	fmt.Fprintf(&b, "Time taken:     %s\n", r.Elapsed)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteComparison writes one table row per result, in the given order.
func WriteComparison(w io.Writer, results []*Result) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STRATEGY", "PATH", "HOPS", "LENGTH", "PUSHES", "POPS", "TIME")

	for _, r := range results {
		path, hops, length := "unreachable", "-", "-"
		if r.Reachable {
			path = joinPath(r.Path)
			hops = strconv.Itoa(r.Hops)
			length = strconv.FormatInt(r.Length, 10)
		}
		t.Row(
			r.Query.Strategy.Short(),
			path,
			hops,
			length,
			strconv.Itoa(r.Pushes),
			strconv.Itoa(r.Pops),
			r.Elapsed.String(),
		)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// joinPath renders vertices space separated.
func joinPath(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
