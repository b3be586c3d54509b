// Package observability provides metrics and tracing instrumentation.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkhive_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// GraphDerivationLatency records latency of connection-graph derivations.
	GraphDerivationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "linkhive_graph_derivation_latency_seconds",
		Help:    "Connection graph derivation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"derivation"})

	// FeedPostsReturned observes how many posts each feed build returns.
	FeedPostsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkhive_feed_posts_returned",
		Help:    "Number of posts returned per feed build",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
	})

	// ConnectionTransitions counts connection lifecycle events by action.
	ConnectionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkhive_connection_transitions_total",
		Help: "Total connection lifecycle transitions by action",
	}, []string{"action"})
)

// TrackDerivation returns a function that records derivation latency when
// called (e.g. defer).
func TrackDerivation(derivation string) func() {
	start := time.Now()
	return func() {
		GraphDerivationLatency.WithLabelValues(derivation).Observe(time.Since(start).Seconds())
	}
}
