package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleGarden_Go/internal/sse"
)

type stoppableServer interface {
	Stop(ctx context.Context) error
}

// shutdownableService is a service that drains work on Shutdown
type shutdownableService interface {
	Shutdown(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server stoppableServer
	Garden shutdownableService
	Hub    *sse.Hub
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. Stream hub (release SSE and WebSocket clients so the server can drain)
// 2. HTTP server (stop accepting taps)
// 3. Garden (submit the pending combo)
//
// The garden gets its own FinalFlushTimeout, detached from ctx, so a slow
// server drain cannot cost the pending clicks.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Garden != nil {
		slog.Info(LogMsgShuttingDownGarden)
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), FinalFlushTimeout)
		shutdownService(flushCtx, ServiceNameGarden, components.Garden)
		cancel()
	}

	slog.Info(LogMsgServerStopped)
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
