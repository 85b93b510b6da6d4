package metrics

import (
	"context"

	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/event"
	"github.com/osse101/IdleGarden_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all garden events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.GardenTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ComboTap:
		TapsTotal.Inc()

	case event.ComboFlushSucceeded:
		var p domain.ComboFlushPayload
		if p, err = event.PayloadAs[domain.ComboFlushPayload](evt); err == nil {
			FlushesTotal.WithLabelValues(ResultSuccess).Inc()
			ClicksSubmitted.Add(float64(p.Clicks))
			SecondsSubmitted.Add(float64(p.ReductionSeconds))
			ComboSize.Observe(float64(p.Clicks))
		}

	case event.ComboFlushFailed:
		FlushesTotal.WithLabelValues(ResultFailure).Inc()

	case event.TreePlanted:
		var p domain.TreePlantedPayload
		if p, err = event.PayloadAs[domain.TreePlantedPayload](evt); err == nil {
			TreesPlanted.WithLabelValues(qualityLabel(p.Quality)).Inc()
		}

	case event.TreeSold:
		var p domain.TreeSoldPayload
		if p, err = event.PayloadAs[domain.TreeSoldPayload](evt); err == nil {
			TreesSold.WithLabelValues(qualityLabel(p.Quality)).Inc()
			GoldEarned.Add(float64(p.SoldPrice))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordTapRejected counts a tap the engine refused
func RecordTapRejected(reason string) {
	TapsRejected.WithLabelValues(reason).Inc()
}

func qualityLabel(q domain.Quality) string {
	if q == "" {
		return string(domain.QualityNormal)
	}
	return string(q)
}
