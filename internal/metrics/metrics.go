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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Combo Metrics
var (
	TapsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTapsTotal,
			Help: HelpTextTapsTotal,
		},
	)

	TapsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTapsRejected,
			Help: HelpTextTapsRejected,
		},
		[]string{LabelReason},
	)

	FlushesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFlushesTotal,
			Help: HelpTextFlushesTotal,
		},
		[]string{LabelResult},
	)

	FlushDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameFlushDuration,
			Help:    HelpTextFlushDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	ClicksSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClicksSubmitted,
			Help: HelpTextClicksSubmitted,
		},
	)

	SecondsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSecondsSubmitted,
			Help: HelpTextSecondsSubmitted,
		},
	)

	ComboSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameComboSize,
			Help:    HelpTextComboSize,
			Buckets: ComboSizeBuckets,
		},
	)
)

// Garden Metrics
var (
	TreesPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreesPlanted,
			Help: HelpTextTreesPlanted,
		},
		[]string{LabelQuality},
	)

	TreesSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreesSold,
			Help: HelpTextTreesSold,
		},
		[]string{LabelQuality},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)
)

// Display stream metrics
var (
	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	StreamEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreamEventsDropped,
			Help: HelpTextStreamEventsDropped,
		},
		[]string{LabelType},
	)
)
