package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusEmpty   = "empty"
	statusInvalid = "invalid"
	statusError   = "error"
)

var (
	// searchDuration measures search requests by status: success, empty
	// (short-circuited without a fetch), invalid, error.
	searchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cheminv",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Duration of chemical searches in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	searchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cheminv",
			Subsystem: "search",
			Name:      "results",
			Help:      "Number of chemicals returned per search.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)
