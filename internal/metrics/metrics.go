package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Upgrade Metrics
var (
	UpgradeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradeAttempts,
			Help: HelpTextUpgradeAttempts,
		},
		[]string{LabelRecipe, LabelOutcome},
	)

	StatModifiersRolled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatModifiersRolled,
			Help: HelpTextStatModifiersRolled,
		},
		[]string{LabelTier, LabelType},
	)
)

// RecordUpgrade counts one upgrade attempt
func RecordUpgrade(recipe, outcome string) {
	UpgradeAttempts.WithLabelValues(recipe, outcome).Inc()
}
