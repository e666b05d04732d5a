// package layout computes absolute board positions for photo tiles.
//
// A tile is one grid cell holding an image, an overlay banner at the cell's
// lower edge, and a text label centered on the banner. All positions are tile
// centers in board coordinates; the grid fills row-major, left to right.
package layout

import (
	"github.com/desertthunder/fmx/internal/shared"
)

const (
	// tileInset shrinks images and overlays below the cell width so
	// neighboring tiles do not touch.
	tileInset = 24

	// overlayEdgeInset lifts the banner slightly off the cell's lower edge.
	overlayEdgeInset = 4
)

// Point is an absolute board coordinate.
type Point struct {
	X float64
	Y float64
}

// Grid describes the fixed tile geometry and overlay styling for a board.
// A Grid is immutable once constructed; every method is a pure function.
type Grid struct {
	Columns    int
	CellWidth  float64
	CellHeight float64
	OriginX    float64
	OriginY    float64

	OverlayHeight float64
	OverlayMargin float64
	OverlayColor  string
	TextSize      int
	TextPaddingX  float64
}

// NewGrid builds a Grid from layout configuration.
func NewGrid(cfg shared.LayoutConfig) Grid {
	return Grid{
		Columns:       cfg.ImagesPerRow,
		CellWidth:     cfg.CellWidth,
		CellHeight:    cfg.CellHeight,
		OriginX:       cfg.StartX,
		OriginY:       cfg.StartY,
		OverlayHeight: cfg.OverlayHeight,
		OverlayMargin: cfg.OverlayMargin,
		OverlayColor:  cfg.OverlayColor,
		TextSize:      cfg.TextSize,
		TextPaddingX:  cfg.TextPaddingX,
	}
}

// TileCenter maps a 1-based sequence index to the tile's center point.
// Tiles fill row-major, wrapping every Columns tiles.
func (g Grid) TileCenter(i int) Point {
	col := (i - 1) % g.Columns
	row := (i - 1) / g.Columns
	return Point{
		X: g.OriginX + float64(col)*g.CellWidth,
		Y: g.OriginY + float64(row)*g.CellHeight,
	}
}

// Placement describes where each element of one tile goes.
type Placement struct {
	Center Point

	// Image center, nudged upward to make room for the banner.
	Image      Point
	ImageWidth float64

	// Overlay banner at the cell's lower edge.
	Overlay       Point
	OverlayWidth  float64
	OverlayHeight float64

	// Label shares the banner's position, inset by the text padding.
	Label      Point
	LabelWidth float64
}

// Placement computes the full element layout for the 1-based sequence index i.
// Geometry is caller-configured and not validated against image aspect ratios.
func (g Grid) Placement(i int) Placement {
	center := g.TileCenter(i)

	elementWidth := g.CellWidth - tileInset
	overlayY := center.Y + g.CellHeight/2 - g.OverlayHeight/2 - overlayEdgeInset

	return Placement{
		Center: center,
		Image: Point{
			X: center.X,
			Y: center.Y - g.OverlayHeight/2 - g.OverlayMargin/2,
		},
		ImageWidth:    elementWidth,
		Overlay:       Point{X: center.X, Y: overlayY},
		OverlayWidth:  elementWidth,
		OverlayHeight: g.OverlayHeight,
		Label:         Point{X: center.X, Y: overlayY},
		LabelWidth:    elementWidth - 2*g.TextPaddingX,
	}
}
