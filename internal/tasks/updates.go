package tasks

import (
	"fmt"

	"github.com/desertthunder/fmx/internal/formatter"
	"github.com/desertthunder/fmx/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ListPhotos Phase = iota
	PlaceTiles
	GroupTiles
)

func (p Phase) String() string {
	switch p {
	case ListPhotos:
		return "list_photos"
	case PlaceTiles:
		return "place_tiles"
	case GroupTiles:
		return "group_tiles"
	default:
		return ""
	}
}

func listingPhotosUpdate(source string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ListPhotos,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Listing album photos from %s...", source),
	}
}

func photosListedUpdate(photos []models.Photo) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ListPhotos,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found %d photos", len(photos)),
		Data:    photos,
	}
}

func tilePlacedUpdate(step, total int, tile TileResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PlaceTiles,
		Step:    step,
		Total:   total,
		Message: formatter.OKSuffix(tile.PhotoID),
		Data:    tile,
	}
}

func tileSkippedUpdate(step, total int, tile TileResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PlaceTiles,
		Step:    step,
		Total:   total,
		Message: formatter.SkipSuffix(tile.PhotoID),
		Data:    tile,
	}
}

func tileFailedUpdate(step, total int, tile TileResult, stage string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PlaceTiles,
		Step:    step,
		Total:   total,
		Message: formatter.ErrorSuffix(tile.PhotoID, stage, err),
		Data:    tile,
	}
}

func tileWarnedUpdate(step, total int, tile TileResult, stage string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PlaceTiles,
		Step:    step,
		Total:   total,
		Message: formatter.WarnSuffix(tile.PhotoID, stage, err),
		Data:    tile,
	}
}

func groupWarnedUpdate(step, total int, tile TileResult, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   GroupTiles,
		Step:    step,
		Total:   total,
		Message: formatter.WarnSuffix(tile.PhotoID, "group", err),
		Data:    tile,
	}
}
