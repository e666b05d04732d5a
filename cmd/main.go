package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/fmx/internal/services"
	"github.com/desertthunder/fmx/internal/shared"
)

func main() {
	// .env is optional; real environments export the variables directly.
	_ = godotenv.Load()

	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	config.ApplyEnv()

	var flickrService services.AlbumSource
	var miroService *services.MiroService

	if config.Credentials.Flickr.APIKey != "" {
		flickrService = services.NewFlickrService(config.Credentials.Flickr, nil)
	}
	if config.Credentials.Miro.Token != "" {
		miroService = services.NewMiroService(config.Credentials.Miro, nil, logger)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Flickr: flickrService,
		Miro:   miroService,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "fmx",
		Usage:    "Copy Flickr albums onto Miro boards as grouped photo tiles",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrMissingCredentials) {
			logger.Fatalf("%v", err)
		}
		logger.Fatalf("application error: %v", err)
	}
}
