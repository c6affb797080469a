package services

import (
	"context"
	"strings"
	"time"

	"github.com/luquetti/mis18/internal/models"
)

// referenceCatalog is the built-in candidate pool for the mocked provider.
var referenceCatalog = []models.Song{
	{ID: "c1", Title: "Yellow", Artist: "Coldplay", Platform: models.PlatformSpotify, ThumbnailURL: "https://picsum.photos/100/100?random=11"},
	{ID: "c2", Title: "Tusa", Artist: "Karol G", Platform: models.PlatformSpotify, ThumbnailURL: "https://picsum.photos/100/100?random=12"},
	{ID: "c3", Title: "Gasolina", Artist: "Daddy Yankee", Platform: models.PlatformYouTube, ThumbnailURL: "https://picsum.photos/100/100?random=13"},
	{ID: "c4", Title: "De Música Ligera", Artist: "Soda Stereo", Platform: models.PlatformYouTube, ThumbnailURL: "https://picsum.photos/100/100?random=14"},
	{ID: "c5", Title: "Trapperz", Artist: "Duki", Platform: models.PlatformSpotify, ThumbnailURL: "https://picsum.photos/100/100?random=15"},
	{ID: "c6", Title: "Viva La Vida", Artist: "Coldplay", Platform: models.PlatformSpotify, ThumbnailURL: "https://picsum.photos/100/100?random=16"},
	{ID: "c7", Title: "Una Cerveza", Artist: "Ráfaga", Platform: models.PlatformYouTube, ThumbnailURL: "https://picsum.photos/100/100?random=17"},
	{ID: "c8", Title: "Bzrp Music Sessions #52", Artist: "Bizarrap", Platform: models.PlatformYouTube, ThumbnailURL: "https://picsum.photos/100/100?random=18"},
}

// CatalogService implements [SearchService] against the built-in reference
// catalog, simulating network latency so callers exercise the same
// overlapping-request handling a real provider forces on them.
type CatalogService struct {
	latency time.Duration
	catalog []models.Song
}

// NewCatalogService creates a catalog provider with the given simulated
// latency per call.
func NewCatalogService(latency time.Duration) *CatalogService {
	return &CatalogService{latency: latency, catalog: referenceCatalog}
}

// SearchSongs matches the query case-insensitively against title or artist
// and returns fresh copies of the hits. Each call computes its result from
// scratch; nothing is cached or shared across calls.
func (c *CatalogService) SearchSongs(ctx context.Context, query string) ([]models.Song, error) {
	if c.latency > 0 {
		select {
		case <-time.After(c.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Song{}, nil
	}

	results := []models.Song{}
	for _, song := range c.catalog {
		if strings.Contains(strings.ToLower(song.Title), q) || strings.Contains(strings.ToLower(song.Artist), q) {
			results = append(results, song)
		}
	}

	return results, nil
}

// Name returns the provider name.
func (c *CatalogService) Name() string { return "catalog" }
