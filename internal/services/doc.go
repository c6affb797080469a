// Package services defines the [SearchService] interface for song lookup and implements it twice.
//
// # Search Contract
//
// A search returns a finite, freshly computed list of song candidates for
// a free-text query. Nothing is cached between calls and no minimum query
// length is enforced here; debouncing and length gating are caller
// concerns. Matching is case-insensitive substring containment against
// title or artist.
//
// A provider failure surfaces as [shared.ErrSearchUnavailable], which is
// distinct from a successful search with zero results.
//
// # Catalog Implementation
//
// [CatalogService] searches a built-in reference catalog and simulates
// network latency, honoring context cancellation while it waits. It has no
// failure path and is the default provider.
//
// # Spotify Implementation
//
// [SpotifyService] searches the Spotify Web API using the OAuth2 client
// credentials flow (no user login involved) and paces requests with a
// [rate.Limiter]. API responses are mapped to [models.Song] candidates.
package services
