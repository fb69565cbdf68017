package query

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values for queryTotal.
const (
	outcomeOK          = "ok"
	outcomeUnreachable = "unreachable"
	outcomeOutOfRange  = "out_of_range"
	outcomeError       = "error"
)

var (
	// queryTotal counts queries by strategy and outcome.
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathprobe_query_total",
		Help: "Total queries by strategy and outcome",
	}, []string{"strategy", "result"})

	// queryDuration tracks traversal time only (no parsing or path output).
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathprobe_query_duration_seconds",
		Help:    "Traversal duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 12), // 1µs to ~4s
	}, []string{"strategy"})

	// queryPushes tracks frontier insertions per query.
	queryPushes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathprobe_query_pushes",
		Help:    "Frontier insertions per query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"strategy"})

	// queryPops tracks frontier removals per query.
	queryPops = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathprobe_query_pops",
		Help:    "Frontier removals per query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"strategy"})
)

// observe records one finished traversal.
func observe(strategy, outcome string, elapsed time.Duration, pushes, pops int) {
	queryTotal.WithLabelValues(strategy, outcome).Inc()
	queryDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	queryPushes.WithLabelValues(strategy).Observe(float64(pushes))
	queryPops.WithLabelValues(strategy).Observe(float64(pops))
}

// reject records a query that never ran.
func reject(strategy, outcome string) {
	queryTotal.WithLabelValues(strategy, outcome).Inc()
}
