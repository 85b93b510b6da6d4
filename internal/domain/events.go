package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "tree.sold")
const (
	// EventTypeComboTap is published for every accepted water tap
	EventTypeComboTap = "combo.tap"

	// EventTypeComboFlushSucceeded is published when the backend acknowledges a batch
	EventTypeComboFlushSucceeded = "combo.flush.succeeded"

	// EventTypeComboFlushFailed is published when a batch submission fails
	EventTypeComboFlushFailed = "combo.flush.failed"

	// EventTypeTreePlanted is published after the backend confirms a plant
	EventTypeTreePlanted = "tree.planted"

	// EventTypeTreeSold is published after the backend confirms a sale
	EventTypeTreeSold = "tree.sold"

	// EventTypeTreeRefreshed is published when an authoritative snapshot replaces local state
	EventTypeTreeRefreshed = "tree.refreshed"

	// EventTypeDisplayFrame carries the per-tick display frame to renderers
	EventTypeDisplayFrame = "display.frame"
)
