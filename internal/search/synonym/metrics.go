package synonym

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeTimeout  = "timeout"
	outcomeError    = "error"
)

var (
	// lookupsTotal counts synonym lookups by outcome: found, not_found, timeout, error.
	lookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cheminv",
			Subsystem: "synonym",
			Name:      "lookups_total",
			Help:      "Synonym lookups by outcome.",
		},
		[]string{"outcome"},
	)

	lookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cheminv",
			Subsystem: "synonym",
			Name:      "lookup_duration_seconds",
			Help:      "Duration of synonym lookups in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5},
		},
	)

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cheminv",
		Subsystem: "synonym",
		Name:      "cache_hits_total",
		Help:      "Synonym lookups answered from the cache.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cheminv",
		Subsystem: "synonym",
		Name:      "cache_misses_total",
		Help:      "Synonym lookups that went to the lookup service.",
	})
)
