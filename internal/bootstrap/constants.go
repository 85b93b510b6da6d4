package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingIdleGarden  = "Starting IdleGarden"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgLogFileUnavailable  = "Session log file unavailable, logging to stdout only"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStreamSubscriberRegistered = "Stream subscriber registered"
)

// =============================================================================
// Session Watch
// =============================================================================

const (
	LogMsgWatchingSession = "Watching session file for sign-in changes"
	LogMsgSignedIn        = "Token changed, reloading garden"
	LogMsgSignedOut       = "Token removed, clearing garden"
	LogMsgReloadFailed    = "Garden reload after sign-in failed"
	LogMsgWatchFailed     = "Session watcher stopped"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownGarden   = "Submitting pending clicks..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	ServiceNameGarden = "garden"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)

// DefaultShutdownTimeout bounds the HTTP drain
const DefaultShutdownTimeout = 10 * time.Second

// FinalFlushTimeout bounds the last click submission on shutdown
const FinalFlushTimeout = 5 * time.Second
