package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameDashboardsServed     = "dashboards_served_total"
	MetricNameLeaderboardsServed   = "leaderboards_served_total"
	MetricNameProfileLookups       = "profile_lookups_total"
	MetricNameProfilesNotFound     = "profiles_not_found_total"
	MetricNameSeasonProgressServed = "season_progress_served_total"
	MetricNameStoreFailures        = "store_failures_total"
)

// Security metric names
const (
	MetricNameAuthFailures        = "auth_failures_total"
	MetricNameRateLimitedRequests = "rate_limited_requests_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextDashboardsServed     = "Total number of dashboard payloads served"
	HelpTextLeaderboardsServed   = "Total number of leaderboard responses served"
	HelpTextProfileLookups       = "Total number of user profile lookups"
	HelpTextProfilesNotFound     = "Total number of profile lookups for unknown users"
	HelpTextSeasonProgressServed = "Total number of season progress responses served"
	HelpTextStoreFailures        = "Total number of requests aborted by entry store failures"
)

// Security metric help text
const (
	HelpTextAuthFailures        = "Total number of rejected authentication attempts"
	HelpTextRateLimitedRequests = "Total number of rate-limited requests"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelPeriod = "period"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
