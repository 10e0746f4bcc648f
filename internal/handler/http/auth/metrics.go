package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Authentication requests by endpoint and result",
		},
		[]string{"endpoint", "result"}, // result: success | failure
	)

	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Authentication request duration by endpoint",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"endpoint"},
	)
)

// RecordAuthRequest counts one register or login attempt.
func RecordAuthRequest(endpoint, result string) {
	authRequestsTotal.WithLabelValues(endpoint, result).Inc()
}

// RecordAuthDuration records how long a register or login attempt took.
func RecordAuthDuration(endpoint string, durationSeconds float64) {
	authDuration.WithLabelValues(endpoint).Observe(durationSeconds)
}
