package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/luquetti/mis18/internal/store"
)

// defaultPollTimeout bounds how long a poll request may hang before the
// client is told to retry.
const defaultPollTimeout = 25 * time.Second

// EventsHandler exposes the change-notification bus over long polling.
// A client requests /api/events?collections=users,songs and the response
// blocks until any of those collections changes or the timeout passes.
type EventsHandler struct {
	bus     *store.Bus
	timeout time.Duration
}

// NewEventsHandler creates the long-poll bridge over the bus.
func NewEventsHandler(bus *store.Bus) *EventsHandler {
	return &EventsHandler{bus: bus, timeout: defaultPollTimeout}
}

// Routes returns the HTTP routes this handler serves.
func (h *EventsHandler) Routes() []string {
	return []string{"/api/events"}
}

// ServeHTTP waits for the first change on any requested collection.
// Responds 200 with the event name, or 204 when the poll times out.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := r.URL.Query().Get("collections")
	if raw == "" {
		http.Error(w, "Missing collections parameter", http.StatusBadRequest)
		return
	}

	merged := make(chan store.Event, 1)
	for _, collection := range strings.Split(raw, ",") {
		events, cancel := h.bus.Subscribe(strings.TrimSpace(collection))
		defer cancel()

		go func() {
			for event := range events {
				select {
				case merged <- event:
				default:
				}
			}
		}()
	}

	select {
	case event := <-merged:
		respondJSON(w, http.StatusOK, map[string]string{"event": event.Name()})
	case <-time.After(h.timeout):
		w.WriteHeader(http.StatusNoContent)
	case <-r.Context().Done():
		w.WriteHeader(http.StatusNoContent)
	}
}
