package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signinAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kambaz_signin_attempts_total",
			Help: "Total number of signin attempts",
		},
		[]string{"status"},
	)

	attemptSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kambaz_quiz_attempt_submissions_total",
			Help: "Total number of quiz attempt submissions",
		},
		[]string{"status"},
	)

	gradingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kambaz_quiz_grading_duration_seconds",
			Help:    "Time spent grading and persisting quiz attempts",
			Buckets: prometheus.DefBuckets,
		},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kambaz_active_sessions_current",
			Help: "Current number of active sessions",
		},
	)
)
