package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler returns an HTTP handler for SSE connections.
// ?types=display.frame,combo.tap limits the stream to those event types.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		eventTypes := ParseTypes(r.URL.Query().Get("types"))

		client := hub.Register(eventTypes)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"total_clients", hub.ClientCount())
		}()

		connectEvent := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}
		if !writeEvent(w, flusher, connectEvent) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// hub is shutting down
					return
				}
				if !writeEvent(w, flusher, event) {
					return
				}

			case <-ticker.C:
				keepalive := Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}
				if !writeEvent(w, flusher, keepalive) {
					return
				}
			}
		}
	}
}

// ParseTypes splits a comma separated filter list, ignoring blanks
func ParseTypes(raw string) []string {
	if raw == "" {
		return nil
	}
	var types []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event Event) bool {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		slog.Error(LogMsgWriteError, "error", err)
		return true
	}
	// Not every writer supports deadlines; the recorder in tests does not
	_ = http.NewResponseController(w).SetWriteDeadline(time.Now().Add(WriteTimeout))
	if _, err := w.Write(msg); err != nil {
		slog.Warn(LogMsgWriteError, "error", err)
		return false
	}
	flusher.Flush()
	return true
}
