package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/fmx/internal/models"
)

var _ list.Item = photoItem{}

// photoItem wraps [models.Photo] to implement [list.Item].
type photoItem struct {
	photo models.Photo
}

func (i photoItem) FilterValue() string { return i.photo.Title }

func (i photoItem) Title() string {
	if i.photo.Title != "" {
		return i.photo.Title
	}
	return i.photo.ID
}

func (i photoItem) Description() string {
	if i.photo.Media == models.MediaVideo {
		return "video • will be skipped"
	}
	if i.photo.BestImageURL() == "" {
		return "no usable image URL • will be skipped"
	}
	return i.photo.BestImageURL()
}
