package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathprobe/query"
	"github.com/katalvlaran/pathprobe/traverse"
)

func (a *app) queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query GRAPH_FILE ALGORITHM SRC DST",
		Short: "Answer one query and exit",
		Long: `Run ALGORITHM (dfs, bfs, ucs, or all) from SRC to DST on GRAPH_FILE.

An unreachable destination is reported in the result block and is not
an error; out-of-range vertices are.`,
		Example: "  pathprobe query g.txt ucs 0 3\n  pathprobe query g.txt all 0 3",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := query.ParseCommand(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			r, err := a.loadRunner(args[0])
			if err != nil {
				return err
			}

			if c.Kind == query.KindCompare {
				results, err := r.Compare(cmd.Context(), c.Query.Source, c.Query.Destination)
				if err != nil {
					return describe(err)
				}
				return query.WriteComparison(a.stdout, results)
			}
			if c.Kind != query.KindRun {
				return fmt.Errorf("%w: %q", query.ErrUnknownCommand, args[1])
			}

			res, err := r.Run(cmd.Context(), c.Query)
			if res != nil {
				return query.WriteResult(a.stdout, res)
			}
			return describe(err)
		},
	}
}

// describe maps a Runner error to the message the shell would print.
func describe(err error) error {
	if errors.Is(err, traverse.ErrVertexOutOfRange) {
		return fmt.Errorf("vertices out of range: %w", err)
	}

	return err
}
