package bootstrap

import (
	"log/slog"

	"github.com/osse101/IdleGarden_Go/internal/event"
	"github.com/osse101/IdleGarden_Go/internal/sse"
)

// InitializeEventSystem creates the in-process event bus and attaches the
// standard subscribers to it
func InitializeEventSystem(hub *sse.Hub) event.Bus {
	eventBus := event.NewMemoryBus()
	RegisterEventHandlers(EventHandlerDependencies{
		EventBus: eventBus,
		Hub:      hub,
	})

	slog.Info(LogMsgEventSystemInitialized, "types", len(event.GardenTypes))
	return eventBus
}
