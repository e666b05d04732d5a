package ui

import (
	"github.com/desertthunder/fmx/internal/models"
	"github.com/desertthunder/fmx/internal/tasks"
)

// photosFetchedMsg carries the album listing fetched on startup.
type photosFetchedMsg struct {
	album  *models.Album
	photos []models.Photo
	err    error
}

// progressUpdateMsg wraps a [tasks.ProgressUpdate] emitted during a copy.
type progressUpdateMsg tasks.ProgressUpdate

// copyCompleteMsg carries the final result of a copy run.
type copyCompleteMsg struct {
	result *tasks.SyncRunResult
	err    error
}
