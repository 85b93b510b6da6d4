package garden

import "time"

const (
	// DefaultDisplayTick is how often a display frame is pushed to the sink
	DefaultDisplayTick = time.Second

	// PrimarySlot is the only garden slot the client drives
	PrimarySlot = 0

	flushWorkers     = 1 // one worker keeps submissions in order
	flushQueueSize   = 4
	displayWorkers   = 1
	displayQueueSize = 1
)

// Log messages
const (
	LogMsgLoaded            = "Garden loaded"
	LogMsgTapRejected       = "Tap rejected"
	LogMsgShortCircuitFlush = "Tree fully watered, submitting combo now"
	LogMsgFlushArmed        = "Flush timer armed"
	LogMsgFlushFired        = "Flush timer fired"
	LogMsgFlushStale        = "Stale flush timer ignored"
	LogMsgFlushSubmitting   = "Submitting click batch"
	LogMsgFlushSucceeded    = "Click batch accepted"
	LogMsgFlushFailed       = "Click batch failed, keeping local prediction"
	LogMsgFlushNotQueued    = "Flush pool stopped, batch dropped"
	LogMsgFlushNotRun       = "Queued batch never ran, resubmitting with pending clicks"
	LogMsgCatalogMiss       = "Catalog lookup failed"
	LogMsgTreePlanted       = "Tree planted"
	LogMsgTreeSold          = "Tree sold"
	LogMsgRefreshed         = "Garden refreshed from backend"
	LogMsgUserRefreshFailed = "Failed to refresh user"
	LogMsgUserCacheFailed   = "Failed to cache user"
	LogMsgPublishFailed     = "Failed to publish event"
	LogMsgAdRewardClaimed   = "Ad reward claimed"
	LogMsgSignedOut         = "Signed out, garden cleared"
	LogMsgShutdown          = "Garden shutting down"
	LogMsgFinalFlush        = "Submitting pending clicks before shutdown"
)
