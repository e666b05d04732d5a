package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/fmx/internal/models"
	"github.com/desertthunder/fmx/internal/shared"
)

// FlickrPhotos lists every photo in the configured album.
func (r *Runner) FlickrPhotos(ctx context.Context, cmd *cli.Command) error {
	if r.flickr == nil {
		return fmt.Errorf("%w: Flickr service not initialized", shared.ErrServiceUnavailable)
	}

	r.logger.Info("listing album photos", "album", r.config.Credentials.Flickr.PhotosetID)

	photos, err := r.flickr.ListPhotos(ctx)
	if err != nil {
		return fmt.Errorf("failed to list photos: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(photos, cmd.Bool("pretty"))
	}

	owner := r.config.Credentials.Flickr.UserID
	for i, photo := range photos {
		marker := " "
		if photo.BestImageURL() == "" {
			marker = "-"
		}
		r.writePlain("%s %4d. %s\n", marker, i+1, photo.Label(owner))
	}

	usable := 0
	for _, photo := range photos {
		if photo.BestImageURL() != "" {
			usable++
		}
	}
	r.writePlainln("%d photos (%d usable, %d will be skipped)", len(photos), usable, len(photos)-usable)

	return nil
}

// FlickrAlbum shows metadata for the configured album.
func (r *Runner) FlickrAlbum(ctx context.Context, cmd *cli.Command) error {
	if r.flickr == nil {
		return fmt.Errorf("%w: Flickr service not initialized", shared.ErrServiceUnavailable)
	}

	album, err := r.flickr.AlbumInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch album info: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(album, cmd.Bool("pretty"))
	}

	r.writeAlbum(album)
	return nil
}

func (r *Runner) writeAlbum(album *models.Album) {
	r.writePlainHeader(album.Title)
	r.writePlain("ID: %s\n", album.ID)
	r.writePlain("Owner: %s\n", album.Owner)
	r.writePlain("Photos: %d\n", album.PhotoCount)
	if album.VideoCount > 0 {
		r.writePlain("Videos: %d (skipped during sync)\n", album.VideoCount)
	}
}
