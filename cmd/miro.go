package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/fmx/internal/shared"
)

// MiroBoard fetches the configured board and prints its raw JSON.
func (r *Runner) MiroBoard(ctx context.Context, cmd *cli.Command) error {
	if r.miro == nil {
		return fmt.Errorf("%w: Miro service not initialized", shared.ErrServiceUnavailable)
	}

	board, err := r.miro.Board(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch board: %w", err)
	}

	return r.writeJSON(board, cmd.Bool("pretty"))
}

// MiroCreateImage creates a single image item on the board, useful for smoke
// testing credentials before a full sync.
func (r *Runner) MiroCreateImage(ctx context.Context, cmd *cli.Command) error {
	if r.miro == nil {
		return fmt.Errorf("%w: Miro service not initialized", shared.ErrServiceUnavailable)
	}

	url := cmd.String("url")
	x := cmd.Float("x")
	y := cmd.Float("y")
	width := cmd.Float("width")

	r.logger.Info("creating image item", "url", url, "x", x, "y", y)

	itemID, err := r.miro.CreateImage(ctx, url, x, y, width, 0)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}

	r.writePlain("✓ Image created: %s\n", itemID)
	return nil
}

// MiroGroup groups existing board items by their IDs.
func (r *Runner) MiroGroup(ctx context.Context, cmd *cli.Command) error {
	if r.miro == nil {
		return fmt.Errorf("%w: Miro service not initialized", shared.ErrServiceUnavailable)
	}

	ids := cmd.StringArgs("ids")
	if len(ids) < 2 {
		return fmt.Errorf("%w: grouping requires at least two item IDs", shared.ErrInvalidInput)
	}

	if err := r.miro.GroupItems(ctx, ids); err != nil {
		return fmt.Errorf("failed to group items: %w", err)
	}

	r.writePlain("✓ Grouped %d items\n", len(ids))
	return nil
}
