// package formatter renders progress lines and run summaries for the CLI
package formatter

import (
	"fmt"
	"io"
	"strings"
)

// DefaultProgressWidth is the bar character width used when a configured
// width is missing or nonsensical.
const DefaultProgressWidth = 40

// ProgressBar renders a fixed-width bar with a fraction, e.g. "[####----] 12/24".
func ProgressBar(current, total, width int) string {
	if width <= 0 {
		width = DefaultProgressWidth
	}

	ratio := 0.0
	if total > 0 {
		ratio = float64(current) / float64(total)
	}

	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}

	return fmt.Sprintf("[%s%s] %d/%d", strings.Repeat("#", filled), strings.Repeat("-", width-filled), current, total)
}

// RenderProgress writes one progress line with an optional status suffix.
// Intermediate lines end with a carriage return so the next line overwrites
// them in place; the final line ends with a newline.
func RenderProgress(w io.Writer, current, total, width int, suffix string) error {
	line := ProgressBar(current, total, width)
	if suffix != "" {
		line += " " + suffix
	}

	end := "\r"
	if current == total {
		end = "\n"
	}

	if _, err := io.WriteString(w, line+end); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}

	return nil
}

// Summary renders the final line of a sync run.
func Summary(placed, total int) string {
	return fmt.Sprintf("Done. Placed %d/%d grouped tiles.", placed, total)
}

// SkipSuffix renders the status for a photo with no usable image.
func SkipSuffix(photoID string) string {
	return fmt.Sprintf("skip %s (no usable image URL or video)", photoID)
}

// ErrorSuffix renders the status for a stage failure on one photo.
func ErrorSuffix(photoID, stage string, err error) string {
	return fmt.Sprintf("ERR %s (%s) -> %v", photoID, stage, err)
}

// WarnSuffix renders the status for a non-fatal stage warning on one photo.
func WarnSuffix(photoID, stage string, err error) string {
	return fmt.Sprintf("warn %s (%s) -> %v", photoID, stage, err)
}

// OKSuffix renders the status for a fully placed photo.
func OKSuffix(photoID string) string {
	return fmt.Sprintf("ok %s", photoID)
}
