package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/desertthunder/fmx/internal/models"
	"github.com/desertthunder/fmx/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func listingPhoto(id, title string) models.Photo {
	return models.Photo{
		ID:    id,
		Title: title,
		URLs:  models.SizeURLs{Medium800: "https://live.staticflickr.com/" + id + "_c.jpg"},
	}
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first, err := NextSequence(db, "photos")
	if err != nil {
		t.Fatalf("failed to get sequence: %v", err)
	}

	second, err := NextSequence(db, "photos")
	if err != nil {
		t.Fatalf("failed to get sequence: %v", err)
	}

	if second != first+1 {
		t.Errorf("expected monotonic sequence, got %d then %d", first, second)
	}
}

func TestPhotoRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)
		photo := models.NewPersistedPhoto(0, listingPhoto("52001", "Sunset"), "https://www.flickr.com/photos/owner/52001")

		if err := repo.Create(photo); err != nil {
			t.Fatalf("failed to create photo: %v", err)
		}

		if photo.ID() == "" {
			t.Error("photo ID should be set after creation")
		}
	})

	t.Run("Create rejects missing flickr id", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)
		photo := models.NewPersistedPhoto(0, models.Photo{Title: "No source"}, "")

		if err := repo.Create(photo); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)
		photo := models.NewPersistedPhoto(0, listingPhoto("52001", "Sunset"), "https://www.flickr.com/photos/owner/52001")

		if err := repo.Create(photo); err != nil {
			t.Fatalf("failed to create photo: %v", err)
		}

		retrieved, err := repo.Get(photo.ID())
		if err != nil {
			t.Fatalf("failed to get photo: %v", err)
		}

		if retrieved.FlickrID() != "52001" {
			t.Errorf("expected flickr ID 52001, got %s", retrieved.FlickrID())
		}

		if retrieved.ImageURL() != "https://live.staticflickr.com/52001_c.jpg" {
			t.Errorf("unexpected image URL %s", retrieved.ImageURL())
		}
	})

	t.Run("GetByFlickrID", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)
		photo := models.NewPersistedPhoto(0, listingPhoto("52002", "Harbor"), "https://www.flickr.com/photos/owner/52002")

		if err := repo.Create(photo); err != nil {
			t.Fatalf("failed to create photo: %v", err)
		}

		retrieved, err := repo.GetByFlickrID("52002")
		if err != nil {
			t.Fatalf("failed to get photo: %v", err)
		}

		if retrieved.Title() != "Harbor" {
			t.Errorf("expected title Harbor, got %s", retrieved.Title())
		}
	})

	t.Run("Get preserves the stored creation time", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)
		photo := models.NewPersistedPhoto(0, listingPhoto("52009", "Archive"), "https://www.flickr.com/photos/owner/52009")

		createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		photo.SetCreatedAt(createdAt)

		if err := repo.Create(photo); err != nil {
			t.Fatalf("failed to create photo: %v", err)
		}

		retrieved, err := repo.Get(photo.ID())
		if err != nil {
			t.Fatalf("failed to get photo: %v", err)
		}

		if !retrieved.CreatedAt().Equal(createdAt) {
			t.Errorf("expected created_at %v, got %v", createdAt, retrieved.CreatedAt())
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)
		photo := models.NewPersistedPhoto(0, listingPhoto("52003", "Old title"), "https://www.flickr.com/photos/owner/52003")

		if err := repo.Create(photo); err != nil {
			t.Fatalf("failed to create photo: %v", err)
		}

		photo.SetImageURL("https://live.staticflickr.com/52003_l.jpg")
		if err := repo.Update(photo); err != nil {
			t.Fatalf("failed to update photo: %v", err)
		}

		retrieved, err := repo.Get(photo.ID())
		if err != nil {
			t.Fatalf("failed to get photo: %v", err)
		}

		if retrieved.ImageURL() != "https://live.staticflickr.com/52003_l.jpg" {
			t.Errorf("expected updated image URL, got %s", retrieved.ImageURL())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)
		photo := models.NewPersistedPhoto(0, listingPhoto("52004", "Gone"), "https://www.flickr.com/photos/owner/52004")

		if err := repo.Create(photo); err != nil {
			t.Fatalf("failed to create photo: %v", err)
		}

		if err := repo.Delete(photo.ID()); err != nil {
			t.Fatalf("failed to delete photo: %v", err)
		}

		if _, err := repo.Get(photo.ID()); err == nil {
			t.Error("expected soft-deleted photo to be hidden")
		}

		if err := repo.Delete(photo.ID()); err == nil {
			t.Error("expected second delete to fail")
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)

		video := listingPhoto("52006", "Clip")
		video.Media = models.MediaVideo

		for _, p := range []models.Photo{listingPhoto("52005", "First"), video} {
			if err := repo.Create(models.NewPersistedPhoto(0, p, "")); err != nil {
				t.Fatalf("failed to create photo: %v", err)
			}
		}

		all, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("failed to list photos: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 photos, got %d", len(all))
		}
		if all[0].FlickrID() != "52005" {
			t.Errorf("expected sequence ordering, got %s first", all[0].FlickrID())
		}

		videos, err := repo.List(map[string]any{"media": models.MediaVideo})
		if err != nil {
			t.Fatalf("failed to list videos: %v", err)
		}
		if len(videos) != 1 || videos[0].FlickrID() != "52006" {
			t.Errorf("expected only the video entry, got %d", len(videos))
		}
	})
}

func TestPhotoCacheAdapter(t *testing.T) {
	t.Run("caches new photos", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)
		adapter := NewPhotoCacheAdapter(repo)

		err := adapter.CachePhoto(context.Background(), listingPhoto("52007", "Fresh"), "https://www.flickr.com/photos/owner/52007")
		if err != nil {
			t.Fatalf("failed to cache photo: %v", err)
		}

		if _, err := repo.GetByFlickrID("52007"); err != nil {
			t.Errorf("expected cached photo, got %v", err)
		}
	})

	t.Run("deduplicates by flickr id", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPhotoRepository(db)
		adapter := NewPhotoCacheAdapter(repo)

		for range 2 {
			if err := adapter.CachePhoto(context.Background(), listingPhoto("52008", "Twice"), ""); err != nil {
				t.Fatalf("failed to cache photo: %v", err)
			}
		}

		all, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("failed to list photos: %v", err)
		}
		if len(all) != 1 {
			t.Errorf("expected one cached entry, got %d", len(all))
		}
	})
}
