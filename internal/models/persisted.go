package models

import (
	"fmt"
	"time"
)

// PersistedPhoto is a cached album listing entry backed by the photos table.
//
// Only source-side listing data is stored; board item identifiers from a sync
// run are never persisted.
type PersistedPhoto struct {
	id        string
	sequence  int
	flickrID  string
	title     string
	media     string
	pageURL   string
	imageURL  string
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewPersistedPhoto creates a PersistedPhoto from a listing DTO.
// The database ID is assigned by the repository on Create.
func NewPersistedPhoto(sequence int, photo Photo, pageURL string) *PersistedPhoto {
	now := time.Now()
	return &PersistedPhoto{
		sequence:  sequence,
		flickrID:  photo.ID,
		title:     photo.Title,
		media:     photo.Media,
		pageURL:   pageURL,
		imageURL:  photo.BestImageURL(),
		createdAt: now,
		updatedAt: now,
	}
}

func (p *PersistedPhoto) ID() string            { return p.id }
func (p *PersistedPhoto) Sequence() int         { return p.sequence }
func (p *PersistedPhoto) FlickrID() string      { return p.flickrID }
func (p *PersistedPhoto) Title() string         { return p.title }
func (p *PersistedPhoto) Media() string         { return p.media }
func (p *PersistedPhoto) PageURL() string       { return p.pageURL }
func (p *PersistedPhoto) ImageURL() string      { return p.imageURL }
func (p *PersistedPhoto) CreatedAt() time.Time  { return p.createdAt }
func (p *PersistedPhoto) UpdatedAt() time.Time  { return p.updatedAt }
func (p *PersistedPhoto) DeletedAt() *time.Time { return p.deletedAt }

func (p *PersistedPhoto) SetID(id string)             { p.id = id }
func (p *PersistedPhoto) SetCreatedAt(t time.Time)    { p.createdAt = t }
func (p *PersistedPhoto) SetUpdatedAt(t time.Time)    { p.updatedAt = t }
func (p *PersistedPhoto) SetDeletedAt(t *time.Time)   { p.deletedAt = t }
func (p *PersistedPhoto) SetImageURL(url string)      { p.imageURL = url }

// Validate checks that the cached entry carries its source identifier.
func (p *PersistedPhoto) Validate() error {
	if p.flickrID == "" {
		return fmt.Errorf("persisted photo missing flickr id")
	}
	return nil
}

// Photo converts the cached entry back to a listing DTO.
// Size URLs beyond the selected one are not retained by the cache.
func (p *PersistedPhoto) Photo() Photo {
	return Photo{
		ID:    p.flickrID,
		Title: p.title,
		Media: p.media,
		URLs:  SizeURLs{Medium800: p.imageURL},
	}
}
