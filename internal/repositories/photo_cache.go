package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/fmx/internal/models"
)

// PhotoCacheAdapter implements tasks.PhotoCacher using PhotoRepository.
//
// Provides automatic photo caching with deduplication via the flickr_id constraint.
// Duplicate photos are silently ignored (UNIQUE constraint violations).
type PhotoCacheAdapter struct {
	repo *PhotoRepository
}

// NewPhotoCacheAdapter creates a new PhotoCacheAdapter with the given repository
func NewPhotoCacheAdapter(repo *PhotoRepository) *PhotoCacheAdapter {
	return &PhotoCacheAdapter{repo: repo}
}

// CachePhoto caches a listed photo.
// Returns nil if the photo already exists (deduplication).
// Only returns errors for actual failures (not constraint violations).
func (a *PhotoCacheAdapter) CachePhoto(ctx context.Context, photo models.Photo, pageURL string) error {
	existing, err := a.repo.GetByFlickrID(photo.ID)
	if err == nil && existing != nil {
		return nil
	}

	persisted := models.NewPersistedPhoto(0, photo, pageURL)

	err = a.repo.Create(persisted)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil
		}
		return fmt.Errorf("failed to cache photo: %w", err)
	}

	return nil
}
