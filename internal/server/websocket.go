package server

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/IdleGarden_Go/internal/sse"
)

// wsStream pushes hub events to WebSocket clients. It carries the same events
// as the SSE stream, one JSON object per text message.
type wsStream struct {
	hub      *sse.Hub
	upgrader websocket.Upgrader
}

func newWSStream(hub *sse.Hub, allowedOrigins []string) *wsStream {
	return &wsStream{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  WSBufferSize,
			WriteBufferSize: WSBufferSize,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// originChecker accepts requests without an Origin header (non-browser
// clients), any origin under "*", and otherwise only listed origins
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || slices.Contains(allowed, "*") {
			return true
		}
		return slices.Contains(allowed, origin)
	}
}

// ServeHTTP upgrades the connection and streams until the client leaves or
// the hub shuts down. ?types= filters like the SSE endpoint.
func (s *wsStream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		slog.Warn(LogMsgWSUpgradeFailed, "error", err)
		return
	}
	defer conn.Close()

	types := sse.ParseTypes(r.URL.Query().Get("types"))
	client := s.hub.Register(types)
	slog.Info(LogMsgWSConnected, "client_id", client.ID, "filters", types)
	defer func() {
		s.hub.Unregister(client.ID)
		slog.Info(LogMsgWSDisconnected, "client_id", client.ID)
	}()

	done := make(chan struct{})
	go readPump(conn, done)
	writePump(conn, client, done)
}

// readPump discards inbound messages and keeps the read deadline alive on
// pongs. It closes done when the peer goes away.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(WSMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(WSReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(WSReadTimeout))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn(LogMsgWSUnexpected, "error", err)
			}
			return
		}
	}
}

func writePump(conn *websocket.Conn, client *sse.Client, done <-chan struct{}) {
	ticker := time.NewTicker(WSPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return

		case evt, ok := <-client.EventChannel:
			_ = conn.SetWriteDeadline(time.Now().Add(WSWriteTimeout))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := conn.WriteJSON(evt); err != nil {
				slog.Warn(LogMsgWSWriteFailed, "client_id", client.ID, "error", err)
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(WSWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
