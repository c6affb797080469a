// Package models defines the domain entities of the guest-management service.
//
// Entities mirror the five persisted collections:
//   - [User] : an invited guest, seeded once and mutated in place
//   - [Table] : a seating table with a fixed capacity; occupancy is derived, never stored
//   - [Song] : a suggested song, deduplicated by (title, artist)
//   - [MusicPreference] : a genre picked by a guest
//   - [WishlistItem] : a reservable gift with a three-state reservation lifecycle
//
// All entities are JSON-serializable; the store owns their serialized
// representation and the repositories own validation and derived views
// such as [TableSeating] and [GenreCount].
package models
