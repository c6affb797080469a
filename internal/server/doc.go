// Package server provides HTTP routing, middleware, and the JSON API for the party app.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Guest API
//
// [PartyHandler] serves the guest-facing endpoints: login, guest list with
// name suggestions, the seating chart with table assignment, music comments
// and genre picks, playlist suggestions backed by catalog search, and the
// gift wishlist.
//
// [StatsHandler] serves the organizer dashboard and sits behind the
// [AdminOnly] middleware, keyed by the token in the party config.
//
// # Change Notifications
//
// [EventsHandler] bridges the store bus to HTTP long polling so browser
// tabs can refresh a collection as soon as another client writes it. One
// poll delivers at most one event name; clients re-poll to keep listening.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
