// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for copying an album onto a board:
//  1. [PhotoListView] : Browse the album listing, with skip reasons surfaced per photo
//  2. [ConfirmView] : Confirm the copy operation
//  3. [CopyView] : Monitor real-time progress updates
//  4. [ResultView] : Display placement counts and failed tiles
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the BoardEngine, providing non-blocking status reporting during copies.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
