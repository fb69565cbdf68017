package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// tracerName identifies spans started by the CLI's tracer provider.
const tracerName = "github.com/katalvlaran/pathprobe"

// serveMetrics exposes the default Prometheus registry on addr/metrics.
// The listener is opened synchronously so a bad address fails the command.
func (a *app) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server", slog.String("error", err.Error()))
		}
	}()
	a.logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))
	a.closers = append(a.closers, srv.Shutdown)

	return nil
}

// startTracing installs a provider that writes every finished span to stderr.
func (a *app) startTracing() error {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(a.stderr), stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("create span exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	a.tracer = tp.Tracer(tracerName)
	a.closers = append(a.closers, tp.Shutdown)

	return nil
}
