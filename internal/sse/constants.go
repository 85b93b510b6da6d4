package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the hub backlog shared by all publishers
	BroadcastBufferSize = 100

	// ClientEventBuffer is how many events a client may lag behind
	ClientEventBuffer = 50
)

// Connection settings
const (
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout bounds each write to a streaming client
	WriteTimeout = 10 * time.Second
)

// Event types carried only by the stream (garden events keep their bus names)
const (
	EventTypeFrame     = "display.frame"
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
	LogMsgBroadcastDropped   = "SSE broadcast buffer full, dropping event"
)
