// Package tasks orchestrates album-to-board copy operations with real-time progress reporting.
//
// # Core Operations
//
// The [SyncEngine] interface defines one operation:
//
//  1. [SyncEngine.Run] : Full album → board copy
//     - Lists every photo in the configured album
//     - Places each photo as a tile: image, title overlay, and label text
//     - Groups each tile's items so they move together on the board
//     - Returns detailed results including skipped and failed tiles
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Placement Semantics
//
// Photos keep their album ordering: a skipped photo still consumes its grid
// cell. Overlay, label, and grouping failures degrade a tile without failing
// the run. Creation calls are paced to respect board API rate limits.
//
// # Photo Caching
//
// When a [PhotoCacher] is attached via [BoardEngine.WithCache], every placed
// photo is recorded. Cache failures are ignored so persistence problems never
// interrupt a copy in flight.
package tasks
