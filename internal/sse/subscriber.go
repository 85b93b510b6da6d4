package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleGarden_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every garden event to SSE clients under its own type
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.GardenTypes))
	for _, t := range event.GardenTypes {
		s.bus.Subscribe(t, s.forward)
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", types)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
