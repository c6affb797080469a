package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/tasks"
)

// PartyHandler serves the guest-facing JSON API. Implements the [Handler]
// interface for registration with a [Router].
type PartyHandler struct {
	engine *tasks.PartyEngine
}

// NewPartyHandler creates the guest API handler over the engine.
func NewPartyHandler(engine *tasks.PartyEngine) *PartyHandler {
	return &PartyHandler{engine: engine}
}

// Routes returns the HTTP routes this handler serves.
func (h *PartyHandler) Routes() []string {
	return []string{
		"/api/login",
		"/api/guests",
		"/api/suggestions",
		"/api/seating",
		"/api/tables/assign",
		"/api/tables/leave",
		"/api/music/comment",
		"/api/genres",
		"/api/genres/remove",
		"/api/trends",
		"/api/songs",
		"/api/search",
		"/api/wishlist",
	}
}

// ServeHTTP dispatches to the route-specific handlers.
func (h *PartyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/login":
		h.login(w, r)
	case "/api/guests":
		h.guests(w, r)
	case "/api/suggestions":
		h.suggestions(w, r)
	case "/api/seating":
		h.seating(w, r)
	case "/api/tables/assign":
		h.assignTable(w, r)
	case "/api/tables/leave":
		h.leaveTable(w, r)
	case "/api/music/comment":
		h.musicComment(w, r)
	case "/api/genres":
		h.genres(w, r)
	case "/api/genres/remove":
		h.removeGenre(w, r)
	case "/api/trends":
		h.trends(w, r)
	case "/api/songs":
		h.songs(w, r)
	case "/api/search":
		h.search(w, r)
	case "/api/wishlist":
		h.wishlist(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *PartyHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.engine.Login(body.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *PartyHandler) guests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.engine.Guests()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *PartyHandler) suggestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names, err := h.engine.SuggestNames(r.URL.Query().Get("q"), 5)
	if err != nil {
		respondError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	respondJSON(w, http.StatusOK, names)
}

func (h *PartyHandler) seating(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	seating, err := h.engine.Seating()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, seating)
}

func (h *PartyHandler) assignTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		UserID  string `json:"userId"`
		TableID string `json:"tableId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.engine.AssignTable(body.UserID, body.TableID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *PartyHandler) leaveTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.engine.LeaveTable(body.UserID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *PartyHandler) musicComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		UserID  string `json:"userId"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.engine.SetMusicComment(body.UserID, body.Comment); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *PartyHandler) genres(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		prefs, err := h.engine.Preferences(r.URL.Query().Get("userId"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, prefs)
	case http.MethodPost:
		var body struct {
			UserID string `json:"userId"`
			Genre  string `json:"genre"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		pref, err := h.engine.AddGenre(body.UserID, body.Genre)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, pref)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PartyHandler) removeGenre(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		ActorID string `json:"actorId"`
		PrefID  string `json:"prefId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.engine.RemoveGenre(body.ActorID, body.PrefID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *PartyHandler) trends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	trends, err := h.engine.GenreTrends(5)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trends)
}

func (h *PartyHandler) songs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		songs, err := h.engine.Songs()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, songs)
	case http.MethodPost:
		var body struct {
			UserID string      `json:"userId"`
			Song   models.Song `json:"song"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := h.engine.SuggestSong(body.UserID, body.Song); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PartyHandler) search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	results, err := h.engine.SearchSongs(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}

func (h *PartyHandler) wishlist(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.engine.Wishlist()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	case http.MethodPost:
		var body struct {
			UserID string `json:"userId"`
			ItemID string `json:"itemId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := h.engine.ToggleWishlist(body.UserID, body.ItemID); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// StatsHandler serves the organizer dashboard numbers. Registered behind
// the [AdminOnly] middleware.
func StatsHandler(engine *tasks.PartyEngine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := engine.Stats()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	})
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps domain errors onto HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, shared.ErrGuestNotFound),
		errors.Is(err, shared.ErrTableNotFound),
		errors.Is(err, shared.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrTableFull),
		errors.Is(err, shared.ErrDuplicateGenre):
		status = http.StatusConflict
	case errors.Is(err, shared.ErrUnknownGenre):
		status = http.StatusBadRequest
	case errors.Is(err, shared.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, shared.ErrSearchUnavailable):
		status = http.StatusBadGateway
	}

	respondJSON(w, status, map[string]string{"error": err.Error()})
}
