package storage

// Log messages
const (
	LogMsgSchemaMismatch = "Session file has unexpected schema version, ignoring"
	LogMsgWatchEvent     = "Session file changed"
	LogMsgWatchError     = "Session watcher error"
	LogMsgReloadFailed   = "Failed to reload session token"
)
