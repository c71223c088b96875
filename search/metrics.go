package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of gridpath_search_total.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeLimit    = "limit"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

// metricsSet holds the search collectors. They are registered with the
// default prometheus registry, so newMetrics runs once per process.
type metricsSet struct {
	SearchCounter     *prometheus.CounterVec
	ExpansionsHist    *prometheus.HistogramVec
	SearchDurationSec *prometheus.HistogramVec
}

func newMetrics() *metricsSet {
	metrics := new(metricsSet)

	metrics.SearchCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_search_total",
		Help: "The total number of searches run, by strategy and outcome",
	},
		[]string{"strategy", "outcome"},
	)

	metrics.ExpansionsHist = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_expansions",
		Help:    "Number of cells expanded by one search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	},
		[]string{"strategy"},
	)

	metrics.SearchDurationSec = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Wall-clock duration of one search",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	},
		[]string{"strategy"},
	)

	return metrics
}

var (
	metrics = newMetrics()
)

func observe(strategy, outcome string, expanded int, took time.Duration) {
	metrics.SearchCounter.WithLabelValues(strategy, outcome).Inc()
	if outcome == outcomeInvalid {
		return
	}
	metrics.ExpansionsHist.WithLabelValues(strategy).Observe(float64(expanded))
	metrics.SearchDurationSec.WithLabelValues(strategy).Observe(took.Seconds())
}
