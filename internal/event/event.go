package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/IdleGarden_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type                   `json:"type"`
	Payload   interface{}            `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Garden event types
const (
	ComboTap            Type = domain.EventTypeComboTap
	ComboFlushSucceeded Type = domain.EventTypeComboFlushSucceeded
	ComboFlushFailed    Type = domain.EventTypeComboFlushFailed
	TreePlanted         Type = domain.EventTypeTreePlanted
	TreeSold            Type = domain.EventTypeTreeSold
	TreeRefreshed       Type = domain.EventTypeTreeRefreshed
)

// GardenTypes lists every event the garden publishes
var GardenTypes = []Type{ComboTap, ComboFlushSucceeded, ComboFlushFailed, TreePlanted, TreeSold, TreeRefreshed}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Type-safe event constructors

// NewComboTapEvent creates an event for an accepted tap
func NewComboTapEvent(payload domain.ComboTapPayload, at time.Time) Event {
	return newEvent(ComboTap, payload, at)
}

// NewComboFlushEvent creates a flush outcome event. A non-empty payload
// Error selects the failed type.
func NewComboFlushEvent(payload domain.ComboFlushPayload, at time.Time) Event {
	t := ComboFlushSucceeded
	if payload.Error != "" {
		t = ComboFlushFailed
	}
	return newEvent(t, payload, at)
}

// NewTreePlantedEvent creates an event for a confirmed plant
func NewTreePlantedEvent(payload domain.TreePlantedPayload, at time.Time) Event {
	return newEvent(TreePlanted, payload, at)
}

// NewTreeSoldEvent creates an event for a confirmed sale
func NewTreeSoldEvent(payload domain.TreeSoldPayload, at time.Time) Event {
	return newEvent(TreeSold, payload, at)
}

// NewTreeRefreshedEvent creates an event for an applied snapshot; treeID is
// empty when the slot is now empty
func NewTreeRefreshedEvent(treeID string, at time.Time) Event {
	e := newEvent(TreeRefreshed, map[string]interface{}{"tree_id": treeID}, at)
	e.Metadata = map[string]interface{}{"source": "refresh"}
	return e
}

func newEvent(t Type, payload interface{}, at time.Time) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Timestamp: at,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
