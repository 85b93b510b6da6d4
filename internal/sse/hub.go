package sse

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/metrics"
)

// Event is one message on the display stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a registered stream consumer (SSE or WebSocket)
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans events out to stream clients. A single loop owns delivery, so
// events reach every client in publish order. Client channels are only closed
// under mu, never while the loop is delivering.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool

	broadcast chan Event

	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHub creates a hub; call Start before publishing
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		broadcast: make(chan Event, BroadcastBufferSize),
		shutdown:  make(chan struct{}),
	}
}

// Start runs the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the loop and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	first := false
	h.stopOnce.Do(func() {
		close(h.shutdown)
		first = true
	})
	if !first {
		return
	}
	h.wg.Wait()

	h.mu.Lock()
	h.closed = true
	for id, client := range h.clients {
		close(client.EventChannel)
		delete(h.clients, id)
	}
	h.mu.Unlock()
	metrics.StreamClients.Set(0)
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case evt := <-h.broadcast:
			h.deliver(evt)

		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if !client.wants(evt.Type) {
			continue
		}
		if send(client.EventChannel, evt) {
			continue
		}
		// A stale frame is worthless once a newer one exists: make room
		// by evicting the oldest queued event, then try once more.
		if evt.Type == EventTypeFrame {
			select {
			case old := <-client.EventChannel:
				metrics.StreamEventsDropped.WithLabelValues(old.Type).Inc()
			default:
			}
			if send(client.EventChannel, evt) {
				continue
			}
		}
		metrics.StreamEventsDropped.WithLabelValues(evt.Type).Inc()
	}
}

func send(ch chan Event, evt Event) bool {
	select {
	case ch <- evt:
		return true
	default:
		return false
	}
}

// Register adds a client. eventTypes limits what it receives; empty means all.
// After Stop the returned client's channel is already closed.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(client.EventChannel)
		return client
	}
	h.clients[client.ID] = client
	metrics.StreamClients.Inc()
	return client
}

// Unregister removes a client and closes its channel. Unknown ids, and ids
// already released by Stop, are ignored.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.EventChannel)
		delete(h.clients, clientID)
		metrics.StreamClients.Dec()
	}
}

// Broadcast queues an event for every interested client. It never blocks;
// when the hub backlog is full the event is dropped.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- evt:
	default:
		metrics.StreamEventsDropped.WithLabelValues(eventType).Inc()
		slog.Warn(LogMsgBroadcastDropped, "event_type", eventType)
	}
}

// PublishFrame broadcasts a display frame. It makes the hub a display sink.
func (h *Hub) PublishFrame(frame domain.DisplayFrame) {
	h.Broadcast(EventTypeFrame, frame)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event in text/event-stream framing
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.Grow(len(data) + len(event.ID) + len(event.Type) + 24)
	if event.ID != "" {
		b.WriteString("id: " + event.ID + "\n")
	}
	b.WriteString("event: " + event.Type + "\n")
	b.WriteString("data: ")
	b.Write(data)
	b.WriteString("\n\n")
	return []byte(b.String()), nil
}
