package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/fmx/internal/formatter"
	"github.com/desertthunder/fmx/internal/repositories"
	"github.com/desertthunder/fmx/internal/shared"
	"github.com/desertthunder/fmx/internal/tasks"
)

// SyncRun copies the configured album onto the board.
//
// Credentials are validated before any network call so a misconfigured run
// reports every missing value at once instead of failing midway.
func (r *Runner) SyncRun(ctx context.Context, cmd *cli.Command) error {
	if err := r.applyConfigFlag(cmd); err != nil {
		return err
	}
	if err := r.config.Validate(); err != nil {
		return err
	}
	if r.flickr == nil {
		return fmt.Errorf("%w: Flickr service not initialized", shared.ErrServiceUnavailable)
	}
	if r.miro == nil {
		return fmt.Errorf("%w: Miro service not initialized", shared.ErrServiceUnavailable)
	}

	if cmd.Bool("cache") {
		db, err := shared.NewDatabase(r.config.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := shared.RunMigrations(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		r.engine.WithCache(repositories.NewPhotoCacheAdapter(repositories.NewPhotoRepository(db)))
	}

	r.logger.Info("starting sync",
		"album", r.config.Credentials.Flickr.PhotosetID,
		"board", r.config.Credentials.Miro.BoardID)
	r.writePlain("Copying album %s to board %s\n\n", r.config.Credentials.Flickr.PhotosetID, r.config.Credentials.Miro.BoardID)

	width := r.config.Layout.ProgressWidth

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.ListPhotos:
				r.writePlain("%s\n", update.Message)
			case tasks.PlaceTiles, tasks.GroupTiles:
				formatter.RenderProgress(r.output, update.Step, update.Total, width, update.Message)
			}
		}
	}()

	result, err := r.engine.Run(ctx, progressCh)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n%s\n", formatter.Summary(result.Placed, result.Total))
	if result.Skipped > 0 {
		r.writePlain("Skipped: %d (videos or no usable image URL)\n", result.Skipped)
	}
	if result.Failed > 0 {
		r.writePlain("Failed: %d\n", result.Failed)
		for _, tile := range result.Tiles {
			if tile.Status == tasks.TileFailed {
				r.writePlain("  - %s: %v\n", tile.PhotoID, tile.Error)
			}
		}
	}

	return nil
}
