// Package repositories implements typed access to the persisted party collections.
//
// Each repository owns exactly one collection key in the [store.Store] and
// is the only writer for it. Reads lazily seed the collection on first
// access; every mutator rewrites the full collection document, which in
// turn broadcasts a change event for that key.
//
// Key Implementations:
//   - [UserRepository] : guest list reads, login by normalized name, in-place updates
//   - [TableRepository] : seating table reads (occupancy is joined elsewhere, never stored)
//   - [SongRepository] : suggested songs with idempotent case-insensitive dedup on add
//   - [PreferenceRepository] : genre picks, append and filter-remove
//   - [WishlistRepository] : the reservation state machine plus the admin release primitive
//   - [SessionRepository] : the single logged-in guest entry
//
// Policy does not live here. Capacity guards, vocabulary checks, per-user
// duplicate genre rejection, and wishlist override privileges are the
// calling layer's job (see the tasks package); the repositories keep the
// storage contract small and degrade to safe no-ops on duplicates.
package repositories
