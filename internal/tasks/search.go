package tasks

import (
	"context"
	"sync"

	"github.com/luquetti/mis18/internal/models"
)

// songSearcher is the slice of the search provider the coordinator needs.
// [PartyEngine] satisfies it too, so interactive callers can search through
// the engine's provider guard.
type songSearcher interface {
	SearchSongs(ctx context.Context, query string) ([]models.Song, error)
}

// SearchResult is the outcome of one catalog lookup, tagged with the query
// that produced it.
type SearchResult struct {
	Query string
	Songs []models.Song
	Err   error
}

// SearchCoordinator runs catalog lookups concurrently while guaranteeing
// that only the most recent query ever delivers a result. Each Search call
// takes a new sequence number; a finishing lookup that no longer holds the
// latest number discards its result instead of publishing stale rows.
type SearchCoordinator struct {
	svc     songSearcher
	results chan SearchResult

	mu  sync.Mutex
	seq uint64
}

// NewSearchCoordinator wraps a search provider for interactive use.
func NewSearchCoordinator(svc songSearcher) *SearchCoordinator {
	return &SearchCoordinator{
		svc:     svc,
		results: make(chan SearchResult, 8),
	}
}

// Results delivers the winning lookups. Superseded lookups never appear
// here, in any order of completion.
func (c *SearchCoordinator) Results() <-chan SearchResult {
	return c.results
}

// Search starts a lookup for query, superseding any lookup still in
// flight. It returns immediately; the outcome arrives on [Results].
func (c *SearchCoordinator) Search(ctx context.Context, query string) {
	c.mu.Lock()
	c.seq++
	ticket := c.seq
	c.mu.Unlock()

	go func() {
		songs, err := c.svc.SearchSongs(ctx, query)

		c.mu.Lock()
		defer c.mu.Unlock()
		if ticket != c.seq {
			return
		}

		// Drop the result rather than block a consumer that went away.
		select {
		case c.results <- SearchResult{Query: query, Songs: songs, Err: err}:
		default:
		}
	}()
}
