package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/fmx/internal/models"
	"github.com/desertthunder/fmx/internal/shared"
)

// PhotoRepository implements models.Repository[*models.PersistedPhoto] for listing caches.
//
// Handles automatic photo caching with soft delete support and Flickr ID lookups.
// Photos are cached as they are placed so album listings can be inspected offline.
type PhotoRepository struct {
	db *sql.DB
}

// NewPhotoRepository creates a new PhotoRepository with the given database connection
func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create inserts a new [models.PersistedPhoto] into the database with generated ID and sequence
func (r *PhotoRepository) Create(photo *models.PersistedPhoto) error {
	sequence, err := NextSequence(r.db, "photos")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	photo.SetID(id)

	if err := photo.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO photos (id, sequence, flickr_id, title, media, page_url, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		photo.FlickrID(),
		photo.Title(),
		photo.Media(),
		photo.PageURL(),
		photo.ImageURL(),
		photo.CreatedAt(),
		photo.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert photo: %w", err)
	}

	return nil
}

// Get retrieves a photo by ID, excluding soft-deleted photos
func (r *PhotoRepository) Get(id string) (*models.PersistedPhoto, error) {
	query := `
		SELECT id, sequence, flickr_id, title, media, page_url, image_url, created_at, updated_at, deleted_at
		FROM photos
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByFlickrID retrieves a photo by its source identifier
func (r *PhotoRepository) GetByFlickrID(flickrID string) (*models.PersistedPhoto, error) {
	query := `
		SELECT id, sequence, flickr_id, title, media, page_url, image_url, created_at, updated_at, deleted_at
		FROM photos
		WHERE flickr_id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, flickrID))
}

// Update modifies an existing photo in the database
func (r *PhotoRepository) Update(photo *models.PersistedPhoto) error {
	if err := photo.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	photo.SetUpdatedAt(now)

	query := `
		UPDATE photos
		SET title = ?, media = ?, page_url = ?, image_url = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		photo.Title(),
		photo.Media(),
		photo.PageURL(),
		photo.ImageURL(),
		now,
		photo.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("photo not found or already deleted: %s", photo.ID())
	}

	return nil
}

// Delete soft-deletes a photo by ID
func (r *PhotoRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE photos
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("photo not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all photos matching the given criteria, excluding soft-deleted photos
func (r *PhotoRepository) List(criteria map[string]any) ([]*models.PersistedPhoto, error) {
	query := `
		SELECT id, sequence, flickr_id, title, media, page_url, image_url, created_at, updated_at, deleted_at
		FROM photos
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if media, ok := criteria["media"].(string); ok && media != "" {
		query += " AND media = ?"
		args = append(args, media)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	var photos []*models.PersistedPhoto
	for rows.Next() {
		photo, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return photos, nil
}

// scanOne scans a single [sql.Row] into a [models.PersistedPhoto]
func (r *PhotoRepository) scanOne(row *sql.Row) (*models.PersistedPhoto, error) {
	var (
		id        string
		sequence  int
		flickrID  string
		title     string
		media     string
		pageURL   string
		imageURL  string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := row.Scan(&id, &sequence, &flickrID, &title, &media, &pageURL, &imageURL, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("photo not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan photo: %w", err)
	}

	return restorePhoto(id, sequence, flickrID, title, media, pageURL, imageURL, createdAt, updatedAt, deletedAt), nil
}

// scanRow scans a row from [sql.Rows] into a [models.PersistedPhoto]
func (r *PhotoRepository) scanRow(rows *sql.Rows) (*models.PersistedPhoto, error) {
	var (
		id        string
		sequence  int
		flickrID  string
		title     string
		media     string
		pageURL   string
		imageURL  string
		createdAt time.Time
		updatedAt time.Time
		deletedAt sql.NullTime
	)

	err := rows.Scan(&id, &sequence, &flickrID, &title, &media, &pageURL, &imageURL, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan photo: %w", err)
	}

	return restorePhoto(id, sequence, flickrID, title, media, pageURL, imageURL, createdAt, updatedAt, deletedAt), nil
}

func restorePhoto(id string, sequence int, flickrID, title, media, pageURL, imageURL string, createdAt, updatedAt time.Time, deletedAt sql.NullTime) *models.PersistedPhoto {
	dto := models.Photo{
		ID:    flickrID,
		Title: title,
		Media: media,
	}

	photo := models.NewPersistedPhoto(sequence, dto, pageURL)
	photo.SetID(id)
	photo.SetImageURL(imageURL)
	photo.SetCreatedAt(createdAt)
	photo.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		photo.SetDeletedAt(&deletedAt.Time)
	}

	return photo
}
