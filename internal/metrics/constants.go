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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Combo metric names
const (
	MetricNameTapsTotal         = "combo_taps_total"
	MetricNameTapsRejected      = "combo_taps_rejected_total"
	MetricNameFlushesTotal      = "combo_flushes_total"
	MetricNameFlushDuration     = "combo_flush_duration_seconds"
	MetricNameClicksSubmitted   = "combo_clicks_submitted_total"
	MetricNameSecondsSubmitted  = "combo_reduction_seconds_submitted_total"
	MetricNameComboSize         = "combo_batch_clicks"
)

// Garden metric names
const (
	MetricNameTreesPlanted = "garden_trees_planted_total"
	MetricNameTreesSold    = "garden_trees_sold_total"
	MetricNameGoldEarned   = "garden_gold_earned_total"
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

// Display stream metric names
const (
	MetricNameStreamClients       = "stream_clients"
	MetricNameStreamEventsDropped = "stream_events_dropped_total"
)

// Display stream metric help text
const (
	HelpTextStreamClients       = "Current number of SSE and WebSocket clients"
	HelpTextStreamEventsDropped = "Events not delivered to a slow stream client"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Combo metric help text
const (
	HelpTextTapsTotal        = "Total number of accepted water taps"
	HelpTextTapsRejected     = "Total number of rejected water taps"
	HelpTextFlushesTotal     = "Total number of click batch submissions"
	HelpTextFlushDuration    = "Click batch submission latency in seconds"
	HelpTextClicksSubmitted  = "Total number of clicks acknowledged by the backend"
	HelpTextSecondsSubmitted = "Total grow seconds removed by acknowledged batches"
	HelpTextComboSize        = "Clicks per submitted batch"
)

// Garden metric help text
const (
	HelpTextTreesPlanted = "Total number of trees planted"
	HelpTextTreesSold    = "Total number of trees sold"
	HelpTextGoldEarned   = "Total gold earned from selling trees"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelReason  = "reason"
	LabelResult  = "result"
	LabelQuality = "quality"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	ReasonNoTree = "no_tree"
	ReasonReady  = "ready"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ComboSizeBuckets covers each click tier boundary
var ComboSizeBuckets = []float64{1, 5, 9, 10, 20, 29, 30, 50, 100}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
