// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/fmx/internal/models"
)

// MockAlbumSource is a test double for [services.AlbumSource]
type MockAlbumSource struct {
	Photos []models.Photo
	Album  *models.Album
}

func (m *MockAlbumSource) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	return m.Photos, nil
}

func (m *MockAlbumSource) AlbumInfo(ctx context.Context) (*models.Album, error) {
	return m.Album, nil
}

func (m *MockAlbumSource) Name() string { return "mock" }

// MockBoard is a test double for [services.Board]
type MockBoard struct{}

func (m *MockBoard) CreateImage(ctx context.Context, imageURL string, x, y, width, height float64) (string, error) {
	return "image-1", nil
}

func (m *MockBoard) CreateRectangle(ctx context.Context, x, y, width, height float64, fill string) (string, error) {
	return "shape-1", nil
}

func (m *MockBoard) CreateText(ctx context.Context, content string, x, y, width float64, fontSize int, align string) (string, error) {
	return "text-1", nil
}

func (m *MockBoard) GroupItems(ctx context.Context, itemIDs []string) error {
	return nil
}

func (m *MockBoard) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
