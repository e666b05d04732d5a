// Flickr API implementation of [AlbumSource]
//
// Response types based on https://www.flickr.com/services/api/flickr.photosets.getPhotos.html
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/desertthunder/fmx/internal/models"
	"github.com/desertthunder/fmx/internal/shared"
)

const (
	flickrEndpoint = "https://www.flickr.com/services/rest/"

	// photosPerPage is the maximum page size the photosets API accepts.
	photosPerPage = 500

	// listExtras requests the per-size direct URLs alongside each record.
	listExtras = "media,path_alias,original_format,url_o,url_k,url_h,url_l,url_c,url_z,url_m"

	listTimeout = 30 * time.Second
)

// flickrPhoto is one photo entry in a photoset listing response.
type flickrPhoto struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Media     string `json:"media"`
	PathAlias string `json:"path_alias"`
	URLO      string `json:"url_o"`
	URLK      string `json:"url_k"`
	URLH      string `json:"url_h"`
	URLL      string `json:"url_l"`
	URLC      string `json:"url_c"`
	URLZ      string `json:"url_z"`
	URLM      string `json:"url_m"`
}

func (p flickrPhoto) toPhoto() models.Photo {
	return models.Photo{
		ID:        p.ID,
		Title:     p.Title,
		Media:     p.Media,
		PathAlias: p.PathAlias,
		URLs: models.SizeURLs{
			Medium800: p.URLC,
			Large:     p.URLL,
			Medium640: p.URLZ,
			Medium500: p.URLM,
			Large1600: p.URLH,
			Large2048: p.URLK,
			Original:  p.URLO,
		},
	}
}

// photosetPage is the "photoset" container of one listing page.
// Flickr is loose with numeric types here (page counts arrive as numbers,
// totals as strings), so counters are modeled as [json.Number].
type photosetPage struct {
	ID    string        `json:"id"`
	Page  json.Number   `json:"page"`
	Pages json.Number   `json:"pages"`
	Total json.Number   `json:"total"`
	Photo []flickrPhoto `json:"photo"`
}

// pageCount returns the server-reported total page count, defaulting to 1.
func (p *photosetPage) pageCount() int {
	if n, err := p.Pages.Int64(); err == nil && n > 0 {
		return int(n)
	}
	return 1
}

type photosResponse struct {
	Photoset *photosetPage `json:"photoset"`
	Stat     string        `json:"stat"`
	Message  string        `json:"message"`
}

type photosetInfoResponse struct {
	Photoset *struct {
		ID    string `json:"id"`
		Owner string `json:"owner"`
		Title struct {
			Content string `json:"_content"`
		} `json:"title"`
		CountPhotos json.Number `json:"count_photos"`
		CountVideos json.Number `json:"count_videos"`
	} `json:"photoset"`
	Stat    string `json:"stat"`
	Message string `json:"message"`
}

// FlickrService implements [AlbumSource] against the Flickr REST endpoint.
// Authentication is a plain API key sent as a query parameter.
type FlickrService struct {
	endpoint   string
	cfg        shared.FlickrConfig
	httpClient *http.Client
}

// NewFlickrService creates a Flickr client for the album named in cfg.
// A nil client gets a default with the listing timeout applied.
func NewFlickrService(cfg shared.FlickrConfig, client *http.Client) *FlickrService {
	if client == nil {
		client = &http.Client{Timeout: listTimeout}
	}

	return &FlickrService{
		endpoint:   flickrEndpoint,
		cfg:        cfg,
		httpClient: client,
	}
}

func (s *FlickrService) Name() string {
	return "Flickr"
}

// call performs a GET against the REST endpoint with the given method parameters.
func (s *FlickrService) call(ctx context.Context, params url.Values, result any) error {
	params.Set("api_key", s.cfg.APIKey)
	params.Set("user_id", s.cfg.UserID)
	params.Set("photoset_id", s.cfg.PhotosetID)
	params.Set("format", "json")
	params.Set("nojsoncallback", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: flickr status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// photosPage fetches one page of the album listing.
// The returned container is nil when the response omits it (bad IDs, private
// album, or an error stat), which terminates pagination.
func (s *FlickrService) photosPage(ctx context.Context, page int) (*photosetPage, error) {
	params := url.Values{}
	params.Set("method", "flickr.photosets.getPhotos")
	params.Set("extras", listExtras)
	params.Set("per_page", strconv.Itoa(photosPerPage))
	params.Set("page", strconv.Itoa(page))

	var response photosResponse
	if err := s.call(ctx, params, &response); err != nil {
		return nil, err
	}

	return response.Photoset, nil
}

// ListPhotos retrieves all photo records in the album, one page at a time.
// Pagination stops when a response lacks the photoset container or when the
// current page reaches the server-reported page count.
func (s *FlickrService) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	var photos []models.Photo
	page := 1

	for {
		ps, err := s.photosPage(ctx, page)
		if err != nil {
			return nil, err
		}
		if ps == nil || ps.Photo == nil {
			break
		}

		for _, entry := range ps.Photo {
			photos = append(photos, entry.toPhoto())
		}

		if page >= ps.pageCount() {
			break
		}
		page++
	}

	return photos, nil
}

// AlbumInfo retrieves the album's metadata.
func (s *FlickrService) AlbumInfo(ctx context.Context) (*models.Album, error) {
	params := url.Values{}
	params.Set("method", "flickr.photosets.getInfo")

	var response photosetInfoResponse
	if err := s.call(ctx, params, &response); err != nil {
		return nil, err
	}

	if response.Photoset == nil || response.Stat != "ok" {
		return nil, fmt.Errorf("%w: %s", shared.ErrAlbumNotFound, response.Message)
	}

	photoCount, _ := response.Photoset.CountPhotos.Int64()
	videoCount, _ := response.Photoset.CountVideos.Int64()

	return &models.Album{
		ID:         response.Photoset.ID,
		Title:      response.Photoset.Title.Content,
		Owner:      response.Photoset.Owner,
		PhotoCount: int(photoCount),
		VideoCount: int(videoCount),
	}, nil
}
