package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathprobe/query"
)

func (a *app) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell GRAPH_FILE",
		Short: "Answer queries interactively",
		Long: `Load GRAPH_FILE and read commands from stdin until EOF or "exit":

  dfs|bfs|ucs <src> <dst>   run one strategy
  all <src> <dst>           run all three and compare
  help                      list commands

Rejected lines print "vertices out of range" or "command not understood"
on stderr and the loop continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.loadRunner(args[0])
			if err != nil {
				return err
			}

			sh := query.NewShell(r, a.stdin, a.stdout,
				query.WithPrompt(a.cfg.Shell.Prompt),
				query.WithErrorOutput(a.stderr),
				query.WithShellLogger(a.logger),
			)
			return sh.Run(cmd.Context())
		},
	}
}
