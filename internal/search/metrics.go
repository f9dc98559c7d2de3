package search

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "juris",
		Name:      "searches_total",
		Help:      "Searches handled, by outcome (ok, empty, unavailable, failed, cached).",
	}, []string{"outcome"})
	metricSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "juris",
		Name:      "search_duration_seconds",
		Help:      "Time spent executing searches against the index.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
	})
	metricSearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "juris",
		Name:      "search_results",
		Help:      "Rows returned per executed search.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 199, 200},
	})
)

func recordSearch(err error, cached bool) {
	metricSearches.WithLabelValues(outcome(err, cached)).Inc()
}

func recordExecution(start time.Time, rows int) {
	metricSearchDuration.Observe(time.Since(start).Seconds())
	metricSearchResults.Observe(float64(rows))
}

func outcome(err error, cached bool) string {
	switch {
	case errors.Is(err, ErrEmptyQuery):
		return "empty"
	case errors.Is(err, ErrStoreUnavailable):
		return "unavailable"
	case err != nil:
		return "failed"
	case cached:
		return "cached"
	default:
		return "ok"
	}
}
