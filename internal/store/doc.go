// Package store implements the persistence layer for the party's shared state.
//
// Collections are stored as whole JSON documents in a single SQLite table,
// keyed by collection name. [Store.Load] seeds a collection atomically on
// first access; row existence, not emptiness, decides whether the seed is
// written, so a collection that was emptied on purpose stays empty.
// [Store.Save] rewrites a document and synchronously publishes a change
// event on the [Bus] so every reader re-fetches.
//
// The store owns the serialized representation exclusively. Typed access
// goes through the generic [Load] and [Save] helpers; domain validation
// lives in the repositories package, not here.
//
// Writes from a single process are serialized by SQLite, but nothing
// guards read-modify-write cycles between two processes sharing one
// database file. That lost-update window is a known limitation inherited
// from the design, not an invariant this package enforces.
package store
