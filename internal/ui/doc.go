// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for guests:
//  1. [LoginView] : Identify yourself by name, with live suggestions
//  2. [MenuView] : Pick a section of the party app
//  3. [SeatingView] : Browse tables and reserve a seat
//  4. [WishlistView] : Reserve or release gift ideas
//  5. [PlaylistView] : Browse the suggested party playlist
//  6. [TrendsView] : See the most requested genres
//  7. [MusicView] : Search song candidates as you type, newest query wins
//  8. [CommentView] : Write a music request, autosaved after a typing pause
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via typed msg structs.
// Store change events flow through a channel from the bus subscription, so a write from any other client redraws the open view.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
