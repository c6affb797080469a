package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/luquetti/mis18/internal/services"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var searchService services.SearchService
	switch config.Search.Provider {
	case "spotify":
		if svc, err := services.NewSpotifyService(config.Search.Spotify); err == nil {
			searchService = svc
		} else {
			logger.Warn("spotify search unavailable, falling back to catalog", "error", err)
		}
	}
	if searchService == nil {
		searchService = services.NewCatalogService(time.Duration(config.Search.LatencyMS) * time.Millisecond)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Search: searchService,
		Logger: logger,
	})
	defer runner.Close()

	app := &cli.Command{
		Name:     "mis18",
		Usage:    "Guest, seating, music & wishlist management for the party",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
