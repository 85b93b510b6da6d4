package bootstrap

import (
	"log/slog"

	"github.com/osse101/IdleGarden_Go/internal/event"
	"github.com/osse101/IdleGarden_Go/internal/metrics"
	"github.com/osse101/IdleGarden_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub // optional
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (combo and garden counters)
// - Stream subscriber (forwards events to SSE and WebSocket clients)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgStreamSubscriberRegistered)
	}
}
