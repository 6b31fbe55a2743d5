// Package metrics exposes Prometheus collectors for the learning-path
// service: data-quality counters from graph construction and request/latency
// metrics for path searches.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EdgesDroppedTotal counts prerequisite edges skipped during graph
	// construction because their source node was never declared. The drop
	// itself is silent at the algorithm level; this counter makes it
	// visible at the system level.
	EdgesDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "knowledge_graph_edges_dropped_total",
			Help: "Total number of dangling prerequisite edges dropped during graph construction",
		},
	)

	// PathRequestsTotal counts learning-path computations by strategy and
	// outcome (found, not_found, error).
	PathRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_path_requests_total",
			Help: "Total number of learning-path computations",
		},
		[]string{"optimization", "outcome"},
	)

	// SearchDuration tracks wall-clock time of a full path computation,
	// including the topology fetch and graph build.
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "learning_path_search_duration_seconds",
			Help:    "Duration of learning-path computations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"optimization"},
	)

	// AlternativePathsReturned observes how many alternative paths each
	// enumeration produced.
	AlternativePathsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "learning_path_alternatives_returned",
			Help:    "Number of alternative paths returned per enumeration",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)
)

// RecordPathRequest records a single path computation.
func RecordPathRequest(optimization, outcome string, elapsed time.Duration) {
	PathRequestsTotal.WithLabelValues(optimization, outcome).Inc()
	SearchDuration.WithLabelValues(optimization).Observe(elapsed.Seconds())
}

// RecordDroppedEdges adds the dropped-edge count from one graph build.
func RecordDroppedEdges(count int) {
	if count > 0 {
		EdgesDroppedTotal.Add(float64(count))
	}
}
