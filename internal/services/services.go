// package services defines interfaces for the two remote HTTP APIs
//
// Flickr (album listing), Miro (board item creation)
package services

import (
	"context"

	"github.com/desertthunder/fmx/internal/models"
)

// AlbumSource defines the interface for photo album providers that can list
// an album's photos with direct image URLs.
type AlbumSource interface {
	// ListPhotos retrieves every photo record in the configured album,
	// fetching pages sequentially until the source reports exhaustion.
	ListPhotos(ctx context.Context) ([]models.Photo, error)

	// AlbumInfo retrieves metadata for the configured album.
	AlbumInfo(ctx context.Context) (*models.Album, error)

	// Name returns the name of the service (e.g., "Flickr")
	Name() string
}

// Board defines the interface for whiteboard providers that can create and
// group visual items at absolute positions.
type Board interface {
	// CreateImage places an image by URL and returns the created item ID.
	// Width and height are included only when positive.
	CreateImage(ctx context.Context, imageURL string, x, y, width, height float64) (string, error)

	// CreateRectangle places a filled rectangle and returns the created item ID.
	CreateRectangle(ctx context.Context, x, y, width, height float64, fill string) (string, error)

	// CreateText places a text item and returns the created item ID.
	CreateText(ctx context.Context, content string, x, y, width float64, fontSize int, align string) (string, error)

	// GroupItems binds the given items into one movable unit.
	GroupItems(ctx context.Context, itemIDs []string) error

	// Name returns the name of the service (e.g., "Miro")
	Name() string
}
