// package tasks implements board placement operations between photo and board services.
//
// The core abstraction is SyncEngine, which orchestrates copying an album onto a
// board as a grid of grouped tiles. Operations emit progress updates via channels
// for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/desertthunder/fmx/internal/layout"
	"github.com/desertthunder/fmx/internal/models"
	"github.com/desertthunder/fmx/internal/services"
	"github.com/desertthunder/fmx/internal/shared"
)

// pacingInterval spaces out creation calls to stay under board API rate limits.
const pacingInterval = 120 * time.Millisecond

// TileStatus describes the outcome of placing a single photo.
type TileStatus int

const (
	TilePlaced TileStatus = iota
	TileSkipped
	TileFailed
)

func (s TileStatus) String() string {
	switch s {
	case TilePlaced:
		return "placed"
	case TileSkipped:
		return "skipped"
	case TileFailed:
		return "failed"
	default:
		return ""
	}
}

// TileResult represents the result of placing a single photo on the board.
// The embedded PlacedTile carries the created board items and tile position.
type TileResult struct {
	models.PlacedTile
	Index  int        // 1-based position in the album ordering
	Status TileStatus // Outcome of the placement
	Error  error      // Error for failed tiles
}

// SyncRunResult contains all data from a full album copy operation.
type SyncRunResult struct {
	RunID   string       // Unique identifier for this run
	Total   int          // Total photos in the album
	Placed  int          // Photos placed as tiles
	Skipped int          // Photos skipped (no usable image URL)
	Failed  int          // Photos that failed to place
	Tiles   []TileResult // Individual tile results in album order
}

// SyncEngine defines operations for copying albums onto boards.
type SyncEngine interface {
	// Run copies the configured album onto the board by listing photos, placing
	// each as an image/overlay/label tile, and grouping the tile's items.
	Run(ctx context.Context, progress chan<- ProgressUpdate) (*SyncRunResult, error)
}

// PhotoCacher records listed photos for later offline inspection.
// Cache failures never interrupt a run.
type PhotoCacher interface {
	CachePhoto(ctx context.Context, photo models.Photo, pageURL string) error
}

// BoardEngine implements SyncEngine for album-to-board copies.
// Contains dependencies on the album source, the board, and the grid layout.
type BoardEngine struct {
	source        services.AlbumSource
	board         services.Board
	grid          layout.Grid
	fallbackOwner string
	pace          *rate.Limiter
	cache         PhotoCacher
}

// NewBoardEngine creates a new BoardEngine with the provided services.
func NewBoardEngine(source services.AlbumSource, board services.Board, grid layout.Grid, fallbackOwner string) *BoardEngine {
	return &BoardEngine{
		source:        source,
		board:         board,
		grid:          grid,
		fallbackOwner: fallbackOwner,
		pace:          rate.NewLimiter(rate.Every(pacingInterval), 1),
	}
}

// WithCache attaches a photo cache to the engine.
func (e *BoardEngine) WithCache(cache PhotoCacher) *BoardEngine {
	e.cache = cache
	return e
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *BoardEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// Run copies the configured album onto the board.
//
// Photos without a usable still image URL (including videos) are skipped and
// consume a grid cell so the album ordering stays intact. Overlay, label, and
// grouping failures degrade the tile but never fail the run; only listing
// failures and context cancellation abort it.
func (e *BoardEngine) Run(ctx context.Context, progress chan<- ProgressUpdate) (*SyncRunResult, error) {
	if e.source == nil {
		return nil, fmt.Errorf("%w: album source not initialized", shared.ErrServiceUnavailable)
	}
	if e.board == nil {
		return nil, fmt.Errorf("%w: board service not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, listingPhotosUpdate(e.source.Name()))

	photos, err := e.source.ListPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list album photos: %v", shared.ErrAPIRequest, err)
	}

	e.sendProgress(progress, photosListedUpdate(photos))

	result := &SyncRunResult{
		RunID: shared.GenerateID(),
		Total: len(photos),
		Tiles: make([]TileResult, 0, len(photos)),
	}

	for i, photo := range photos {
		step := i + 1
		tile := TileResult{PlacedTile: models.PlacedTile{PhotoID: photo.ID}, Index: step}

		imageURL := photo.BestImageURL()
		if imageURL == "" {
			tile.Status = TileSkipped
			result.Skipped++
			result.Tiles = append(result.Tiles, tile)
			e.sendProgress(progress, tileSkippedUpdate(step, result.Total, tile))
			continue
		}

		// Skipped photos make no board calls, so pacing applies only once a
		// creation is about to happen.
		if err := e.pace.Wait(ctx); err != nil {
			return result, fmt.Errorf("placement interrupted: %w", err)
		}

		placement := e.grid.Placement(step)
		tile.X, tile.Y = placement.Center.X, placement.Center.Y

		imageID, err := e.board.CreateImage(ctx, imageURL, placement.Image.X, placement.Image.Y, placement.ImageWidth, 0)
		if err != nil {
			tile.Status = TileFailed
			tile.Error = err
			result.Failed++
			result.Tiles = append(result.Tiles, tile)
			e.sendProgress(progress, tileFailedUpdate(step, result.Total, tile, "image", err))
			continue
		}
		tile.ItemIDs = append(tile.ItemIDs, imageID)

		overlayID, err := e.board.CreateRectangle(ctx, placement.Overlay.X, placement.Overlay.Y, placement.OverlayWidth, placement.OverlayHeight, e.grid.OverlayColor)
		if err != nil {
			e.sendProgress(progress, tileWarnedUpdate(step, result.Total, tile, "overlay", err))
		} else {
			tile.ItemIDs = append(tile.ItemIDs, overlayID)
		}

		textID, err := e.board.CreateText(ctx, photo.Label(e.fallbackOwner), placement.Label.X, placement.Label.Y, placement.LabelWidth, e.grid.TextSize, "center")
		if err != nil {
			e.sendProgress(progress, tileWarnedUpdate(step, result.Total, tile, "text", err))
		} else {
			tile.ItemIDs = append(tile.ItemIDs, textID)
		}

		if len(tile.ItemIDs) >= 2 {
			if err := e.board.GroupItems(ctx, tile.ItemIDs); err != nil {
				e.sendProgress(progress, groupWarnedUpdate(step, result.Total, tile, err))
			} else {
				tile.Grouped = true
			}
		}

		e.cachePhoto(ctx, photo)

		tile.Status = TilePlaced
		result.Placed++
		result.Tiles = append(result.Tiles, tile)
		e.sendProgress(progress, tilePlacedUpdate(step, result.Total, tile))
	}

	return result, nil
}

func (e *BoardEngine) cachePhoto(ctx context.Context, photo models.Photo) {
	if e.cache == nil {
		return
	}
	_ = e.cache.CachePhoto(ctx, photo, photo.PageURL(e.fallbackOwner))
}
