package models

import (
	"fmt"

	"github.com/luquetti/mis18/internal/shared"
)

// Platform identifies the music service a suggested song came from.
type Platform string

const (
	PlatformSpotify Platform = "spotify"
	PlatformYouTube Platform = "youtube"
)

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	return p == PlatformSpotify || p == PlatformYouTube
}

// User is an invited guest. Users are seeded from the fixed guest list and
// never created or deleted at runtime; login, table choice, and the music
// comment mutate them in place.
//
// NormalizedName is the login key and is unique across all users.
type User struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	NormalizedName string  `json:"normalizedName"`
	GroupName      string  `json:"groupName,omitempty"`
	TableID        *string `json:"tableId,omitempty"`
	MusicComment   string  `json:"musicComment,omitempty"`
	IsAdmin        bool    `json:"isAdmin,omitempty"`
	HasLoggedIn    bool    `json:"hasLoggedIn,omitempty"`
}

// FirstName returns the leading word of the display name, for greetings.
func (u User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}

// Validate checks the user's invariants.
func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("%w: user id is required", shared.ErrInvalidInput)
	}
	if u.Name == "" {
		return fmt.Errorf("%w: user name is required", shared.ErrInvalidInput)
	}
	// The seed may alias a shorter login key (e.g. "admin"), so the key only
	// has to be in normalized form, not derived from the display name.
	if u.NormalizedName == "" || u.NormalizedName != shared.Normalize(u.NormalizedName) {
		return fmt.Errorf("%w: normalized name must be a normalized key", shared.ErrInvalidInput)
	}
	return nil
}

// Table is a seating table. Occupancy is not stored here; it is derived by
// counting users whose TableID points at this table, fresh on every read.
type Table struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Validate checks the table's invariants.
func (t Table) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: table id is required", shared.ErrInvalidInput)
	}
	if t.Capacity <= 0 {
		return fmt.Errorf("%w: table capacity must be positive", shared.ErrInvalidInput)
	}
	return nil
}

// TableSeating joins a table with its current occupants. Built fresh per
// read so the seating view never drifts from the users collection.
type TableSeating struct {
	Table     Table  `json:"table"`
	Occupants []User `json:"occupants"`
}

// Full reports whether the table has reached capacity.
func (s TableSeating) Full() bool {
	return len(s.Occupants) >= s.Table.Capacity
}

// Song is a guest-suggested song. No two songs share the same
// (title, artist) pair case-insensitively.
type Song struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Artist            string   `json:"artist"`
	Platform          Platform `json:"platform"`
	ThumbnailURL      string   `json:"thumbnailUrl"`
	LinkURL           string   `json:"linkUrl,omitempty"`
	SuggestedByUserID string   `json:"suggestedByUserId"`
}

// Key returns the song's deduplication key.
func (s Song) Key() string {
	return shared.SongKey(s.Title, s.Artist)
}

// Validate checks the song's invariants.
func (s Song) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("%w: song title is required", shared.ErrInvalidInput)
	}
	if !s.Platform.Valid() {
		return fmt.Errorf("%w: unknown platform %q", shared.ErrInvalidInput, s.Platform)
	}
	return nil
}

// MusicPreference records one genre picked by one guest. A guest may hold
// many preferences; duplicates per guest are rejected at the edit layer.
type MusicPreference struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Genre  string `json:"genre"`
}

// Validate checks the preference's invariants.
func (p MusicPreference) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: preference user id is required", shared.ErrInvalidInput)
	}
	if p.Genre == "" {
		return fmt.Errorf("%w: preference genre is required", shared.ErrInvalidInput)
	}
	return nil
}

// GenreCount is an aggregate row for the genre trend chart.
type GenreCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// WishlistItem is a reservable gift. IsTaken is true iff TakenByUserID is
// set; an item is reserved by at most one guest at a time.
type WishlistItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ImageURL      string `json:"imageUrl"`
	LinkURL       string `json:"linkUrl,omitempty"`
	IsTaken       bool   `json:"isTaken"`
	TakenByUserID string `json:"takenByUserId,omitempty"`
}

// TakenBy reports whether the item is currently reserved by the given user.
func (w WishlistItem) TakenBy(userID string) bool {
	return w.IsTaken && w.TakenByUserID == userID
}

// Validate checks the item's reservation invariant.
func (w WishlistItem) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("%w: wishlist item id is required", shared.ErrInvalidInput)
	}
	if w.IsTaken != (w.TakenByUserID != "") {
		return fmt.Errorf("%w: isTaken must match takenByUserId", shared.ErrInvalidInput)
	}
	return nil
}

// Stats aggregates the organizer's dashboard numbers.
type Stats struct {
	Confirmed   int `json:"confirmed"`
	Total       int `json:"total"`
	WithComment int `json:"withComment"`
	WithTable   int `json:"withTable"`
}
