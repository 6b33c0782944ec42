package llm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	invocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "thematic_llm_invocation_duration_seconds",
			Help:    "Duration of generation service calls in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"service"},
	)
	invocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thematic_llm_invocations_total",
			Help: "Total generation service calls by service and outcome",
		},
		[]string{"service", "outcome"},
	)
	rateLimitWaits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thematic_llm_rate_limit_waits_total",
			Help: "Times a generation call had to wait for the rate limit window to reset",
		},
		[]string{"service"},
	)
)

func recordInvocation(service ServiceType, outcome string) {
	invocations.WithLabelValues(string(service), outcome).Inc()
}
