package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/fmx/internal/repositories"
	"github.com/desertthunder/fmx/internal/shared"
)

// CachePhotos fetches the configured album listing and records it in the
// local database for offline inspection.
func (r *Runner) CachePhotos(ctx context.Context, cmd *cli.Command) error {
	if r.flickr == nil {
		return fmt.Errorf("%w: Flickr service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Infof("caching album listing: %s", r.config.Credentials.Flickr.PhotosetID)

	photos, err := r.flickr.ListPhotos(ctx)
	if err != nil {
		return fmt.Errorf("failed to list photos: %w", err)
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	adapter := repositories.NewPhotoCacheAdapter(repositories.NewPhotoRepository(db))

	owner := r.config.Credentials.Flickr.UserID
	cached := 0
	for _, photo := range photos {
		if err := adapter.CachePhoto(ctx, photo, photo.PageURL(owner)); err != nil {
			r.logger.Warn("failed to cache photo", "id", photo.ID, "error", err)
			continue
		}
		cached++
	}

	r.writePlainln("✓ Cached %d/%d photos to %s", cached, len(photos), r.config.Database.Path)
	return nil
}

// CacheList lists photos recorded during previous cache or sync runs.
func (r *Runner) CacheList(ctx context.Context, cmd *cli.Command) error {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := repositories.NewPhotoRepository(db)

	criteria := map[string]any{}
	if media := cmd.String("media"); media != "" {
		criteria["media"] = media
	}

	photos, err := repo.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list cached photos: %w", err)
	}

	if cmd.Bool("json") {
		entries := make([]map[string]any, 0, len(photos))
		for _, photo := range photos {
			entries = append(entries, map[string]any{
				"flickr_id": photo.FlickrID(),
				"title":     photo.Title(),
				"media":     photo.Media(),
				"page_url":  photo.PageURL(),
				"image_url": photo.ImageURL(),
			})
		}
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}

	for i, photo := range photos {
		title := photo.Title()
		if title == "" {
			title = photo.FlickrID()
		}
		r.writePlain("%4d. %s (%s)\n", i+1, title, photo.PageURL())
	}
	r.writePlainln("%d cached photos", len(photos))

	return nil
}
