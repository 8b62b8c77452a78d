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

// Upgrade metric names
const (
	MetricNameUpgradeAttempts     = "upgrade_attempts_total"
	MetricNameStatModifiersRolled = "stat_modifiers_rolled_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextUpgradeAttempts      = "Total number of weapon upgrade attempts by recipe and outcome"
	HelpTextStatModifiersRolled  = "Total number of stat modifiers rolled by tier and damage type"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelRecipe  = "recipe"
	LabelOutcome = "outcome"
	LabelTier    = "tier"
	LabelType    = "type"
)

// Upgrade outcomes
const (
	// OutcomeApplied means items were consumed and the effect ran
	OutcomeApplied = "applied"
	// OutcomeInfeasible means the combination was known but its precondition failed
	OutcomeInfeasible = "infeasible"
	// OutcomeRejected means validation, authorization or lookup stopped the request
	// before anything was consumed
	OutcomeRejected = "rejected"
	// OutcomeFailed means the request failed during consumption or the effect
	OutcomeFailed = "failed"
)

// UnmatchedRoute labels requests that did not match a chi route pattern
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
