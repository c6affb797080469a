package services

import (
	"context"

	"github.com/luquetti/mis18/internal/models"
)

// SearchService finds song candidates for a free-text query. Results are
// suggestions only; the acting guest is attached by the caller when a
// candidate is actually added to the party playlist.
type SearchService interface {
	// SearchSongs returns an ordered list of candidates matching the query.
	// An empty result is a normal outcome, not an error.
	SearchSongs(ctx context.Context, query string) ([]models.Song, error)

	// Name returns the provider's name (e.g. "catalog", "spotify")
	Name() string
}
