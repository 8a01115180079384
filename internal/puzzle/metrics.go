// SPDX-License-Identifier: MIT

package puzzle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts service calls by operation and outcome.
	// Labels: op = daily_pair|solution|validate|hint|distance|history,
	// result = ok|error|invalid|not_found|unreachable.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordladder_requests_total",
		Help: "Puzzle service calls by operation and result",
	}, []string{"op", "result"})

	selectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordladder_selection_duration_seconds",
		Help:    "Daily pair selection duration",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	})

	selectionAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordladder_selection_attempts",
		Help:    "Random attempts plus fallback starts per daily selection",
		Buckets: []float64{1, 10, 100, 1000, 5000, 10000},
	})

	selectionPhase = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordladder_selection_phase_total",
		Help: "Daily selections by the phase that produced the pair",
	}, []string{"phase"})
)

func observe(op, result string) {
	requestsTotal.WithLabelValues(op, result).Inc()
}
