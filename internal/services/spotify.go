// Spotify Web API implementation of [SearchService]
//
// Response types based on https://developer.spotify.com/documentation/web-api/reference/search
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	searchLimit = 10
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Images []SpotifyImage `json:"images"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Artists      []SpotifyArtist `json:"artists"`
	Album        SpotifyAlbum    `json:"album"`
	ExternalURLs externalURLs    `json:"external_urls"`
}

type trackPage struct {
	Items []SpotifyTrack `json:"items"`
	Total int            `json:"total"`
}

type searchResponse struct {
	Tracks trackPage `json:"tracks"`
}

// SpotifyService implements [SearchService] against the Spotify Web API.
//
// Authentication uses the client credentials flow: the party app searches
// the public catalog and never acts on behalf of a Spotify user, so no
// authorization redirect is involved. The oauth2 client refreshes expired
// tokens transparently.
type SpotifyService struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// NewSpotifyService creates a Spotify search provider from credentials.
func NewSpotifyService(cfg shared.SpotifyConfig) (*SpotifyService, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: spotify client_id and client_secret are required", shared.ErrInvalidConfig)
	}

	creds := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyTokenURL,
	}

	rps := cfg.RequestsPerS
	if rps <= 0 {
		rps = 5
	}

	return &SpotifyService{
		httpClient: creds.Client(context.Background()),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		baseURL:    spotifyBaseURL,
	}, nil
}

// SearchSongs queries the /search endpoint and maps tracks to candidates.
// Transport and API failures surface as [shared.ErrSearchUnavailable]; an
// empty item page is a normal zero-result outcome.
func (s *SpotifyService) SearchSongs(ctx context.Context, query string) ([]models.Song, error) {
	if query == "" {
		return []models.Song{}, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", fmt.Sprintf("%d", searchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", shared.ErrSearchUnavailable, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: search returned %d: %s", shared.ErrSearchUnavailable, resp.StatusCode, body)
	}

	var page searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", shared.ErrSearchUnavailable, err)
	}

	results := make([]models.Song, 0, len(page.Tracks.Items))
	for _, track := range page.Tracks.Items {
		results = append(results, mapTrack(track))
	}

	return results, nil
}

// Name returns the provider name.
func (s *SpotifyService) Name() string { return "spotify" }

// mapTrack converts a Spotify track to a song candidate.
func mapTrack(track SpotifyTrack) models.Song {
	song := models.Song{
		Title:    track.Name,
		Artist:   "",
		Platform: models.PlatformSpotify,
		LinkURL:  track.ExternalURLs.Spotify,
	}

	if len(track.Artists) > 0 {
		song.Artist = track.Artists[0].Name
	}
	if len(track.Album.Images) > 0 {
		song.ThumbnailURL = track.Album.Images[0].URL
	}

	return song
}
