package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathprobe/core"
	"github.com/katalvlaran/pathprobe/logging"
	"github.com/katalvlaran/pathprobe/traverse"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/pathprobe/query"

// Query names one traversal: a strategy and two endpoints.
type Query struct {
	Strategy    traverse.Strategy
	Source      int
	Destination int
}

// Result is the outcome of one Run.
type Result struct {
	// ID is a random uuid identifying this run in logs and spans.
	ID string

	Query Query

	// Path lists the route from source to destination; nil when unreachable.
	Path   []int
	Hops   int
	Length int64

	Pushes int
	Pops   int

	// Elapsed covers the traversal only.
	Elapsed time.Duration

	Reachable bool
}

// Runner executes queries against one graph.
type Runner struct {
	graph  *core.Graph
	logger *slog.Logger
	now    func() time.Time
	tracer trace.Tracer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for per-query records. Panics on nil.
func WithLogger(l *slog.Logger) RunnerOption {
	if l == nil {
		panic("query: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.logger = l
	}
}

// WithClock replaces time.Now for measuring traversal time. Panics on nil.
func WithClock(now func() time.Time) RunnerOption {
	if now == nil {
		panic("query: WithClock(nil)")
	}
	return func(r *Runner) {
		r.now = now
	}
}

// WithTracer replaces the global OpenTelemetry tracer. Panics on nil.
func WithTracer(t trace.Tracer) RunnerOption {
	if t == nil {
		panic("query: WithTracer(nil)")
	}
	return func(r *Runner) {
		r.tracer = t
	}
}

// NewRunner returns a Runner over g. Defaults: discarding logger, time.Now,
// and the global tracer provider.
func NewRunner(g *core.Graph, opts ...RunnerOption) *Runner {
	r := &Runner{
		graph:  g,
		logger: logging.Discard(),
		now:    time.Now,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Graph returns the graph the Runner queries.
func (r *Runner) Graph() *core.Graph {
	return r.graph
}

// Run executes q.
//
// Out-of-range endpoints fail with traverse.ErrVertexOutOfRange before any
// traversal. An unreached destination yields both a Result (Reachable
// false, counters filled) and an error wrapping traverse.ErrUnreachable.
func (r *Runner) Run(ctx context.Context, q Query) (*Result, error) {
	id := uuid.NewString()
	strategy := q.Strategy.Short()

	ctx, span := r.tracer.Start(ctx, "query.Run",
		trace.WithAttributes(
			attribute.String("query.id", id),
			attribute.String("query.strategy", strategy),
			attribute.Int("query.source", q.Source),
			attribute.Int("query.destination", q.Destination),
		),
	)
	defer span.End()

	// 1) Reject bad input without touching the traversal engine.
	if r.graph == nil {
		span.RecordError(traverse.ErrGraphNil)
		span.SetStatus(codes.Error, "no graph")
		reject(strategy, outcomeError)
		return nil, traverse.ErrGraphNil
	}
	if n := r.graph.VertexCount(); !r.graph.Contains(q.Source) || !r.graph.Contains(q.Destination) {
		err := fmt.Errorf("%w: source=%d destination=%d vertices=%d",
			traverse.ErrVertexOutOfRange, q.Source, q.Destination, n)
		span.RecordError(err)
		span.SetStatus(codes.Error, "vertex out of range")
		reject(strategy, outcomeOutOfRange)
		r.logger.DebugContext(ctx, "query rejected",
			slog.String("query_id", id),
			slog.String("strategy", strategy),
			slog.Int("source", q.Source),
			slog.Int("destination", q.Destination),
			slog.Int("vertices", n),
		)
		return nil, err
	}

	// 2) Time the traversal alone.
	start := r.now()
	res, err := traverse.Search(r.graph, q.Strategy, q.Source, q.Destination)
	elapsed := r.now().Sub(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		reject(strategy, outcomeError)
		return nil, err
	}

	out := &Result{
		ID:      id,
		Query:   q,
		Pushes:  res.Pushes,
		Pops:    res.Pops,
		Elapsed: elapsed,
	}

	// 3) Reconstruct; unreachable is a reported outcome, not a failure.
	path, err := res.Path()
	outcome := outcomeOK
	switch {
	case errors.Is(err, traverse.ErrUnreachable):
		outcome = outcomeUnreachable
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "path reconstruction failed")
		observe(strategy, outcomeError, elapsed, res.Pushes, res.Pops)
		return nil, err
	default:
		out.Path = path.Vertices
		out.Hops = path.Hops
		out.Length = path.Length
		out.Reachable = true
	}

	observe(strategy, outcome, elapsed, out.Pushes, out.Pops)
	span.SetAttributes(
		attribute.Bool("query.reachable", out.Reachable),
		attribute.Int("query.pushes", out.Pushes),
		attribute.Int("query.pops", out.Pops),
		attribute.Int64("query.length", out.Length),
	)
	span.SetStatus(codes.Ok, outcome)

	r.logger.DebugContext(ctx, "query done",
		slog.String("query_id", id),
		slog.String("strategy", strategy),
		slog.Int("source", q.Source),
		slog.Int("destination", q.Destination),
		slog.Bool("reachable", out.Reachable),
		slog.Int("hops", out.Hops),
		slog.Int64("length", out.Length),
		slog.Int("pushes", out.Pushes),
		slog.Int("pops", out.Pops),
		slog.Duration("elapsed", elapsed),
	)

	return out, err
}

// Compare runs every strategy from src to dst concurrently and returns the
// results in traverse.Strategies order. An unreached destination is not an
// error here; each Result carries Reachable. Any other failure aborts.
func (r *Runner) Compare(ctx context.Context, src, dst int) ([]*Result, error) {
	strategies := traverse.Strategies()
	results := make([]*Result, len(strategies))

	g, gCtx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		i, s := i, s
		g.Go(func() error {
			res, err := r.Run(gCtx, Query{Strategy: s, Source: src, Destination: dst})
			if err != nil && !errors.Is(err, traverse.ErrUnreachable) {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
