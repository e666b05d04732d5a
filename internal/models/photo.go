package models

import (
	"fmt"
	"strings"
)

const flickrPhotoPageBase = "https://www.flickr.com/photos"

// MediaVideo is the media kind Flickr reports for video entries.
const MediaVideo = "video"

// SizeURLs holds the per-size direct image URLs a listing response may include.
// Any field may be empty; Flickr only returns the sizes that exist for a photo.
type SizeURLs struct {
	Medium800 string // url_c, 800px on the longest side, cropped
	Large     string // url_l, 1024px
	Medium640 string // url_z, 640px
	Medium500 string // url_m, 500px
	Large1600 string // url_h, 1600px
	Large2048 string // url_k, 2048px
	Original  string // url_o, original upload
}

// Photo represents a single photo record from the source album.
// It exists only for the duration of one sync iteration.
type Photo struct {
	ID        string
	Title     string
	Media     string // "photo" or "video"
	PathAlias string // owner's custom URL alias, may be empty
	URLs      SizeURLs
}

// BestImageURL picks one direct image URL for the photo, preferring sizes
// close to the target tile width over the largest available.
//
// Videos never yield a URL. Returns "" when no size field is present.
func (p Photo) BestImageURL() string {
	if p.Media == MediaVideo {
		return ""
	}
	for _, u := range []string{
		p.URLs.Medium800,
		p.URLs.Large,
		p.URLs.Medium640,
		p.URLs.Medium500,
		p.URLs.Large1600,
		p.URLs.Large2048,
		p.URLs.Original,
	} {
		if u != "" {
			return u
		}
	}
	return ""
}

// PageURL builds the photo's public page URL from the owner's path alias,
// falling back to the given owner ID. No network call is made.
func (p Photo) PageURL(fallbackOwner string) string {
	owner := p.PathAlias
	if owner == "" {
		owner = fallbackOwner
	}
	return fmt.Sprintf("%s/%s/%s", flickrPhotoPageBase, owner, p.ID)
}

// Label is the text placed on the tile's overlay banner: the trimmed title
// followed by the photo page URL, or just the URL for untitled photos.
func (p Photo) Label(fallbackOwner string) string {
	page := p.PageURL(fallbackOwner)
	if title := strings.TrimSpace(p.Title); title != "" {
		return title + " — " + page
	}
	return page
}

// Album represents album metadata from the source service.
type Album struct {
	ID         string
	Title      string
	Owner      string
	PhotoCount int
	VideoCount int
}

// PlacedTile records the board items created for one photo.
type PlacedTile struct {
	PhotoID string
	ItemIDs []string // image, overlay, label identifiers in creation order
	X       float64
	Y       float64
	Grouped bool
}
