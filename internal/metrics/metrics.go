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

// Business Metrics
var (
	DashboardsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDashboardsServed,
			Help: HelpTextDashboardsServed,
		},
		[]string{LabelPeriod},
	)

	LeaderboardsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardsServed,
			Help: HelpTextLeaderboardsServed,
		},
		[]string{LabelPeriod},
	)

	ProfileLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileLookups,
			Help: HelpTextProfileLookups,
		},
	)

	ProfilesNotFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfilesNotFound,
			Help: HelpTextProfilesNotFound,
		},
	)

	SeasonProgressServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSeasonProgressServed,
			Help: HelpTextSeasonProgressServed,
		},
	)

	StoreFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStoreFailures,
			Help: HelpTextStoreFailures,
		},
	)
)

// Security Metrics
var (
	AuthFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailures,
			Help: HelpTextAuthFailures,
		},
	)

	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedRequests,
			Help: HelpTextRateLimitedRequests,
		},
	)
)
