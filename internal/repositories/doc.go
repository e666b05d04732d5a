// Package repositories implements SQLite persistence for cached album listings.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [PhotoRepository] : Photo listing cache with Flickr ID lookups
//   - [PhotoCacheAdapter] : tasks.PhotoCacher adapter with UNIQUE constraint deduplication
//
// Sequence numbers provide stable, human-readable ordering (e.g., photo #42) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
//
// Only source-side listing data is stored. Board item identifiers produced by a
// sync run are never persisted.
package repositories
