package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/osse101/IdleGarden_Go/internal/api"
	"github.com/osse101/IdleGarden_Go/internal/config"
	"github.com/osse101/IdleGarden_Go/internal/domain"
	"github.com/osse101/IdleGarden_Go/internal/format"
	"github.com/osse101/IdleGarden_Go/internal/logger"
	"github.com/osse101/IdleGarden_Go/internal/storage"
)

func main() {
	token := flag.String("token", "", "Token returned by the Google sign-in redirect")
	logout := flag.Bool("logout", false, "Remove the stored token and cached user")
	status := flag.Bool("status", false, "Show who is signed in")
	flag.Parse()

	logger.InitLoggerWithWriter(logger.DefaultConfig(), os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load configuration", err)
	}

	store := storage.NewFileStore(cfg.StorePath)
	client := api.NewClient(api.Options{
		BaseURL:    cfg.APIBaseURL,
		Timeout:    cfg.APITimeout,
		MaxRetries: cfg.APIMaxRetries,
	}, store)

	switch {
	case *logout:
		if err := store.ClearAll(); err != nil {
			fatal("Failed to clear session", err)
		}
		fmt.Println("Signed out.")

	case *token != "":
		if err := store.SaveToken(strings.TrimSpace(*token)); err != nil {
			fatal("Failed to save token", err)
		}
		printProfile(client, store)

	case *status:
		printProfile(client, store)

	default:
		fmt.Println("Open this URL in a browser and sign in with Google:")
		fmt.Println()
		fmt.Println("  " + client.LoginURL())
		fmt.Println()
		fmt.Println("Then run: login -token <token from the redirect>")
	}
}

// printProfile checks the stored token against the backend and caches the user
func printProfile(client *api.Client, store storage.Store) {
	user, err := client.Profile(context.Background())
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		fmt.Println("Token rejected by the server. Sign in again.")
		os.Exit(1)
	case err != nil:
		fatal("Failed to load profile", err)
	}

	if err := store.SaveUser(*user); err != nil {
		slog.Warn("Failed to cache user", "error", err)
	}
	fmt.Printf("Signed in as %s (%sg, %s trees sold)\n",
		user.Name, format.Gold(user.Gold), format.Number(int64(user.TotalTreesSold)))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
