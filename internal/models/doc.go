// Package models defines domain entities and persistence interfaces for the FMX album sync tool.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs representing external service data
//   - [Photo] : One album listing entry with per-size direct URLs
//   - [Album] : Album metadata from the source service
//   - [PlacedTile] : Board items created for one photo during a sync run
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [PersistedPhoto] : Cached album listing entries for offline inspection
//
// Image selection lives on [Photo]: [Photo.BestImageURL] applies the fixed size
// preference order and rejects videos, [Photo.PageURL] derives the public photo
// page address without touching the network.
//
// All persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
