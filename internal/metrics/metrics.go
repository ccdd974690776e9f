package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Item Metrics
var (
	ItemsTicked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsTicked,
			Help: HelpTextItemsTicked,
		},
		[]string{LabelVariant},
	)

	ItemsPastSellDate = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsPastSellDate,
			Help: HelpTextItemsPastSellDate,
		},
		[]string{LabelVariant},
	)

	InvariantViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInvariantViolations,
			Help: HelpTextInvariantViolations,
		},
		[]string{LabelVariant},
	)
)

// Nightly Metrics
var (
	NightlyRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNightlyRuns,
			Help: HelpTextNightlyRuns,
		},
	)

	NightlyRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameNightlyRunDuration,
			Help:    HelpTextNightlyRunDuration,
			Buckets: NightlyRunBuckets,
		},
	)
)
