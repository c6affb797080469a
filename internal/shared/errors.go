package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Storage errors. A dropped write means a guest saw a change that was
	// never persisted, so callers must surface these rather than swallow them.
	ErrStorage = fmt.Errorf("storage failure")

	// Lookup outcomes. Expected results of normal user input
	// (a mistyped name, a stale id), not faults.
	ErrGuestNotFound = fmt.Errorf("no such guest")
	ErrTableNotFound = fmt.Errorf("table not found")
	ErrItemNotFound  = fmt.Errorf("wishlist item not found")

	// Validation errors, raised at the edit layer before a mutator runs
	ErrTableFull      = fmt.Errorf("table is full")
	ErrUnknownGenre   = fmt.Errorf("genre not in vocabulary")
	ErrDuplicateGenre = fmt.Errorf("genre already picked")
	ErrNotAuthorized  = fmt.Errorf("not authorized")

	// Search provider errors, distinct from an empty result set
	ErrSearchUnavailable = fmt.Errorf("search unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
