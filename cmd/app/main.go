package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/IdleGarden_Go/internal/api"
	"github.com/osse101/IdleGarden_Go/internal/bootstrap"
	"github.com/osse101/IdleGarden_Go/internal/catalog"
	"github.com/osse101/IdleGarden_Go/internal/combo"
	"github.com/osse101/IdleGarden_Go/internal/config"
	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/garden"
	"github.com/osse101/IdleGarden_Go/internal/handler"
	"github.com/osse101/IdleGarden_Go/internal/server"
	"github.com/osse101/IdleGarden_Go/internal/sse"
	"github.com/osse101/IdleGarden_Go/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logCloser := bootstrap.SetupLogger(cfg)
	defer logCloser.Close()

	store := storage.NewFileStore(cfg.StorePath)
	client := api.NewClient(api.Options{
		BaseURL:    cfg.APIBaseURL,
		Timeout:    cfg.APITimeout,
		MaxRetries: cfg.APIMaxRetries,
	}, store)
	seeds := catalog.New(client, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	hub := sse.NewHub()
	hub.Start()
	eventBus := bootstrap.InitializeEventSystem(hub)

	gardenService := garden.NewService(garden.Config{
		Combo: combo.Config{
			FlushDelay:     cfg.ComboFlushDelay,
			EffectLifetime: combo.DefaultEffectLifetime,
			FlushRetries:   cfg.ComboFlushRetries,
		},
		DisplayTick: cfg.DisplayTick,
	}, garden.Deps{
		Backend: client,
		Catalog: seeds,
		Store:   store,
		Bus:     eventBus,
		Sink:    hub,
		Clock:   clockwork.NewRealClock(),
	})
	gardenService.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	token, err := store.Token()
	switch {
	case errors.Is(err, domain.ErrTokenNotFound):
		slog.Warn("Not signed in, run the login command", "login_url", client.LoginURL())
	case err != nil:
		slog.Error("Failed to read session", "error", err)
	default:
		if _, err := gardenService.Load(ctx); err != nil {
			slog.Warn("Initial garden load failed", "error", err)
		}
	}

	go bootstrap.WatchSession(ctx, store, token, bootstrap.SessionFuncs{
		OnSignIn: func(ctx context.Context) error {
			seeds.Invalidate()
			_, err := gardenService.Load(ctx)
			return err
		},
		OnSignOut: gardenService.SignOut,
	})

	ready := handler.HealthCheckFunc(func(context.Context) error {
		_, err := store.Token()
		return err
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.ControlAPIKey,
		TrustedProxies: cfg.TrustedProxies,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Version:        cfg.Version,
	}, gardenService, hub, ready)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Garden: gardenService,
		Hub:    hub,
	})
}
