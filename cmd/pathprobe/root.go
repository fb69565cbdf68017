package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathprobe/config"
	"github.com/katalvlaran/pathprobe/core"
	"github.com/katalvlaran/pathprobe/logging"
	"github.com/katalvlaran/pathprobe/query"
)

// app carries the resolved configuration and the resources opened for one
// invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Persistent flag values; they override the config file when set.
	configPath  string
	logLevel    string
	logJSON     bool
	metricsAddr string
	traceOn     bool

	cfg    config.Config
	logger *slog.Logger
	tracer trace.Tracer

	// closers release resources in reverse order of acquisition.
	closers []func(context.Context) error
}

// run executes one CLI invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, logger: logging.Discard()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	a.close(context.Background())
	if err != nil {
		return 1
	}

	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathprobe",
		Short: "Compare DFS, BFS and uniform-cost search on weighted graphs",
		Long: `pathprobe loads an undirected weighted graph from a cost-matrix file
and answers single-source shortest-path queries with depth-first,
breadth-first or uniform-cost exploration, reporting the path, its length,
and frontier statistics.

Graph file format: the vertex count n, then n*n non-negative integers in
row-major order. A positive entry at (i, j) is an edge of that cost.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit JSON log records")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address")
	pf.BoolVar(&a.traceOn, "trace", false, "write query spans to stderr")

	root.AddCommand(a.shellCmd(), a.queryCmd(), a.genCmd())

	return root
}

// setup resolves config (file, then flags) and opens the logger, the
// metrics endpoint and the span exporter.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = a.metricsAddr
	}
	if flags.Changed("trace") {
		cfg.Trace.Enabled = a.traceOn
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	lc := cfg.Logging()
	lc.Output = a.stderr
	a.logger = logging.New(lc)

	if cfg.Metrics.Addr != "" {
		if err = a.serveMetrics(cfg.Metrics.Addr); err != nil {
			return err
		}
	}
	if cfg.Trace.Enabled {
		if err = a.startTracing(); err != nil {
			return err
		}
	}

	return nil
}

// close runs closers in reverse order, logging failures.
func (a *app) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.logger.Warn("shutdown", slog.String("error", err.Error()))
		}
	}
	a.closers = nil
}

// loadRunner reads the graph file and wraps it in a query.Runner.
func (a *app) loadRunner(path string) (*query.Runner, error) {
	g, err := core.LoadFile(path)
	if err != nil {
		a.logger.Error("graph load failed", slog.String("path", path), slog.String("error", err.Error()))
		return nil, fmt.Errorf("could not load graph: %w", err)
	}
	a.logger.Info("graph loaded",
		slog.String("path", path),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()/2),
		slog.Bool("symmetric", g.Symmetric()),
	)

	opts := []query.RunnerOption{query.WithLogger(a.logger)}
	if a.tracer != nil {
		opts = append(opts, query.WithTracer(a.tracer))
	}

	return query.NewRunner(g, opts...), nil
}
