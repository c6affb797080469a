// Package tasks implements the party workflows on top of the repositories.
//
// The core abstraction is [PartyEngine], the validation and policy edge the
// UI layers (CLI, HTTP, TUI) call instead of touching repositories
// directly. The engine owns the rules the storage layer deliberately does
// not enforce: the table capacity guard, the genre vocabulary and per-guest
// duplicate check, and the wishlist override privilege.
//
// Two long-running helpers support interactive callers:
//   - [SearchCoordinator] : serializes overlapping searches so only the
//     latest query's results are ever delivered (last-query-wins)
//   - [CommentSaver] : debounces music-comment writes so rapid typing
//     produces at most one store write per idle period
package tasks
