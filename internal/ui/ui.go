package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/fmx/internal/formatter"
	"github.com/desertthunder/fmx/internal/models"
	"github.com/desertthunder/fmx/internal/services"
	"github.com/desertthunder/fmx/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PhotoListView ViewState = iota
	ConfirmView
	CopyView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	source       services.AlbumSource
	engine       *tasks.BoardEngine
	width        int
	height       int
	album        *models.Album
	photos       []models.Photo
	photoList    list.Model
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.SyncRunResult
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, source services.AlbumSource, engine *tasks.BoardEngine) *Model {
	return &Model{
		ctx:    ctx,
		view:   PhotoListView,
		source: source,
		engine: engine,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init initializes the TUI by fetching the album listing.
func (m *Model) Init() tea.Cmd {
	return m.fetchPhotos()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.photoList.Width() == 0 {
			m.photoList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PhotoListView:
			return m.handlePhotoListKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case photosFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.album = msg.album
		m.photos = msg.photos
		items := make([]list.Item, len(msg.photos))
		for i, photo := range msg.photos {
			items[i] = photoItem{photo: photo}
		}
		m.photoList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.photoList.Title = m.albumTitle()
		m.photoList.SetSize(m.width-4, m.height-8)
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case copyCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		if m.progressChan != nil {
			m.progressChan = nil
		}
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PhotoListView:
		return m.renderPhotoList()
	case ConfirmView:
		return m.renderConfirm()
	case CopyView:
		return m.renderCopy()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) albumTitle() string {
	if m.album != nil && m.album.Title != "" {
		return fmt.Sprintf("%s (%d photos)", m.album.Title, len(m.photos))
	}
	return fmt.Sprintf("Album photos (%d)", len(m.photos))
}

func (m *Model) handlePhotoListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if len(m.photos) > 0 {
			m.view = ConfirmView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.photoList, cmd = m.photoList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n":
		m.view = PhotoListView
		return m, nil
	case "y":
		m.view = CopyView
		return m, m.startCopy()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = PhotoListView
		m.result = nil
		m.err = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == PhotoListView {
		m.photoList, cmd = m.photoList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchPhotos() tea.Cmd {
	return func() tea.Msg {
		photos, err := m.source.ListPhotos(m.ctx)
		if err != nil {
			return photosFetchedMsg{err: err}
		}

		// Album metadata is decorative; listing is what matters.
		album, _ := m.source.AlbumInfo(m.ctx)
		return photosFetchedMsg{album: album, photos: photos}
	}
}

func (m *Model) startCopy() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	go func() {
		result, err := m.engine.Run(m.ctx, m.progressChan)
		m.result = result
		m.err = err
		close(m.progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return copyCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return copyCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderPhotoList() string {
	copyKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy to board"))
	helpKeys := []key.Binding{copyKey, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.photoList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Copy '%s' to the board?", m.albumTitle()))
	info := fmt.Sprintf("\nPhotos: %d\nEach photo becomes a grouped tile with a title overlay.\n", len(m.photos))

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderCopy() string {
	title := styles.title.Render("Copying Album")

	var phase string
	switch m.progress.Phase {
	case tasks.ListPhotos:
		phase = "Listing album photos..."
	case tasks.PlaceTiles, tasks.GroupTiles:
		phase = formatter.ProgressBar(m.progress.Step, m.progress.Total, formatter.DefaultProgressWidth)
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Copy failed: %v\n\nPress r to retry, q to quit", m.err))
	}

	if m.result == nil {
		return styles.err.Render("No result available\n\nPress r to retry, q to quit")
	}

	title := styles.ok.Render("✓ " + formatter.Summary(m.result.Placed, m.result.Total))
	info := fmt.Sprintf("\nPlaced: %d\nSkipped: %d\nFailed: %d", m.result.Placed, m.result.Skipped, m.result.Failed)

	var failed string
	if m.result.Failed > 0 {
		failed = fmt.Sprintf("\n\n%s", styles.warn.Render(fmt.Sprintf("Failed to place %d photos:", m.result.Failed)))
		for _, tile := range m.result.Tiles {
			if tile.Status == tasks.TileFailed {
				failed += fmt.Sprintf("\n  • %s: %v", tile.PhotoID, tile.Error)
			}
		}
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s%s\n\n%s", title, info, failed, helpView)
}
