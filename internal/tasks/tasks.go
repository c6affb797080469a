package tasks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/repositories"
	"github.com/luquetti/mis18/internal/services"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/store"
)

// PartyEngine orchestrates guest workflows over the persisted collections.
// Every mutation below writes through exactly one repository, which keeps
// the one-collection-per-save contract intact.
type PartyEngine struct {
	users    *repositories.UserRepository
	tables   *repositories.TableRepository
	songs    *repositories.SongRepository
	prefs    *repositories.PreferenceRepository
	wishlist *repositories.WishlistRepository
	search   services.SearchService
}

// NewPartyEngine creates a PartyEngine over the given store and search
// provider. The search provider may be nil for callers that never search.
func NewPartyEngine(s *store.Store, search services.SearchService) *PartyEngine {
	return &PartyEngine{
		users:    repositories.NewUserRepository(s),
		tables:   repositories.NewTableRepository(s),
		songs:    repositories.NewSongRepository(s),
		prefs:    repositories.NewPreferenceRepository(s),
		wishlist: repositories.NewWishlistRepository(s),
		search:   search,
	}
}

// Login authenticates a guest by display name.
func (e *PartyEngine) Login(name string) (*models.User, error) {
	return e.users.Login(name)
}

// Guests returns the full guest list.
func (e *PartyEngine) Guests() ([]models.User, error) {
	return e.users.List()
}

// Guest returns one guest by ID.
func (e *PartyEngine) Guest(id string) (*models.User, error) {
	return e.users.Get(id)
}

// ConfirmedGuests returns the guests that have logged in at least once,
// sorted by display name.
func (e *PartyEngine) ConfirmedGuests() ([]models.User, error) {
	users, err := e.users.List()
	if err != nil {
		return nil, err
	}

	confirmed := []models.User{}
	for _, u := range users {
		if u.HasLoggedIn {
			confirmed = append(confirmed, u)
		}
	}

	sort.Slice(confirmed, func(i, j int) bool { return confirmed[i].Name < confirmed[j].Name })
	return confirmed, nil
}

// SuggestNames returns up to limit guest names whose normalized form
// contains the normalized input. Inputs of one character or less return
// nothing; suggesting on the first keystroke is just noise.
func (e *PartyEngine) SuggestNames(input string, limit int) ([]string, error) {
	if len(strings.TrimSpace(input)) <= 1 {
		return nil, nil
	}

	users, err := e.users.List()
	if err != nil {
		return nil, err
	}

	norm := shared.Normalize(input)
	var names []string
	for _, u := range users {
		if strings.Contains(shared.Normalize(u.Name), norm) {
			names = append(names, u.Name)
			if len(names) == limit {
				break
			}
		}
	}

	return names, nil
}

// Seating joins every table with its current occupants. The join is
// recomputed from the users collection on every call; occupancy is never
// cached anywhere.
func (e *PartyEngine) Seating() ([]models.TableSeating, error) {
	tables, err := e.tables.List()
	if err != nil {
		return nil, err
	}
	users, err := e.users.List()
	if err != nil {
		return nil, err
	}

	seating := make([]models.TableSeating, len(tables))
	for i, table := range tables {
		seat := models.TableSeating{Table: table, Occupants: []models.User{}}
		for _, u := range users {
			if u.TableID != nil && *u.TableID == table.ID {
				seat.Occupants = append(seat.Occupants, u)
			}
		}
		seating[i] = seat
	}

	return seating, nil
}

// AssignTable seats a guest at a table. This is the single call site that
// enforces the capacity invariant: the guard runs against a fresh join and
// a full table yields [shared.ErrTableFull] instead of an overflowing
// write. Re-picking the current table is a no-op.
func (e *PartyEngine) AssignTable(userID, tableID string) error {
	user, err := e.users.Get(userID)
	if err != nil {
		return err
	}
	table, err := e.tables.Get(tableID)
	if err != nil {
		return err
	}

	if user.TableID != nil && *user.TableID == table.ID {
		return nil
	}

	users, err := e.users.List()
	if err != nil {
		return err
	}
	occupants := 0
	for _, u := range users {
		if u.TableID != nil && *u.TableID == table.ID {
			occupants++
		}
	}
	if occupants >= table.Capacity {
		return fmt.Errorf("%w: %s (%d/%d)", shared.ErrTableFull, table.Name, occupants, table.Capacity)
	}

	user.TableID = &table.ID
	return e.users.Update(*user)
}

// LeaveTable clears the guest's table choice.
func (e *PartyEngine) LeaveTable(userID string) error {
	user, err := e.users.Get(userID)
	if err != nil {
		return err
	}
	if user.TableID == nil {
		return nil
	}

	user.TableID = nil
	return e.users.Update(*user)
}

// SetMusicComment stores the guest's free-text music comment. Writing the
// same comment again is a no-op so debounced autosave cannot spam the
// store.
func (e *PartyEngine) SetMusicComment(userID, comment string) error {
	user, err := e.users.Get(userID)
	if err != nil {
		return err
	}
	if user.MusicComment == comment {
		return nil
	}

	user.MusicComment = comment
	return e.users.Update(*user)
}

// Preferences returns the guest's genre picks.
func (e *PartyEngine) Preferences(userID string) ([]models.MusicPreference, error) {
	return e.prefs.ListByUser(userID)
}

// AddGenre validates a free-text genre against the controlled vocabulary,
// rejects duplicates per guest, and stores the canonical form.
func (e *PartyEngine) AddGenre(userID, genre string) (*models.MusicPreference, error) {
	canonical, ok := models.CanonicalGenre(genre)
	if !ok {
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownGenre, genre)
	}

	mine, err := e.prefs.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range mine {
		if p.Genre == canonical {
			return nil, fmt.Errorf("%w: %s", shared.ErrDuplicateGenre, canonical)
		}
	}

	pref := models.MusicPreference{ID: shared.GenerateID(), UserID: userID, Genre: canonical}
	if err := e.prefs.Add(pref); err != nil {
		return nil, err
	}

	return &pref, nil
}

// RemoveGenre deletes a genre pick. Guests may remove their own picks;
// admins may remove anyone's.
func (e *PartyEngine) RemoveGenre(actorID, prefID string) error {
	actor, err := e.users.Get(actorID)
	if err != nil {
		return err
	}

	prefs, err := e.prefs.List()
	if err != nil {
		return err
	}

	for _, p := range prefs {
		if p.ID != prefID {
			continue
		}
		if p.UserID != actor.ID && !actor.IsAdmin {
			return fmt.Errorf("%w: pick belongs to another guest", shared.ErrNotAuthorized)
		}
		return e.prefs.Remove(prefID)
	}

	// Removing an unknown pick is harmless; the end state is the same.
	return nil
}

// GenreTrends aggregates genre picks across all guests, most popular
// first, capped at limit. Names are uppercased for display, matching the
// trend chart.
func (e *PartyEngine) GenreTrends(limit int) ([]models.GenreCount, error) {
	prefs, err := e.prefs.List()
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, p := range prefs {
		counts[strings.ToUpper(p.Genre)]++
	}

	trends := make([]models.GenreCount, 0, len(counts))
	for name, value := range counts {
		trends = append(trends, models.GenreCount{Name: name, Value: value})
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Value != trends[j].Value {
			return trends[i].Value > trends[j].Value
		}
		return trends[i].Name < trends[j].Name
	})

	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends, nil
}

// Songs returns the suggested party playlist.
func (e *PartyEngine) Songs() ([]models.Song, error) {
	return e.songs.List()
}

// SuggestSong stamps the acting guest on a candidate and adds it to the
// playlist. Duplicates (case-insensitive title+artist) are silently
// dropped by the repository.
func (e *PartyEngine) SuggestSong(userID string, candidate models.Song) error {
	if _, err := e.users.Get(userID); err != nil {
		return err
	}

	candidate.SuggestedByUserID = userID
	return e.songs.Add(candidate)
}

// SearchSongs looks up candidates through the configured provider.
func (e *PartyEngine) SearchSongs(ctx context.Context, query string) ([]models.Song, error) {
	if e.search == nil {
		return nil, fmt.Errorf("%w: no search provider configured", shared.ErrSearchUnavailable)
	}
	return e.search.SearchSongs(ctx, query)
}

// Wishlist returns all gift items.
func (e *PartyEngine) Wishlist() ([]models.WishlistItem, error) {
	return e.wishlist.List()
}

// ToggleWishlist applies the reservation policy for the acting guest and
// then drives the storage state machine:
//
//   - an item that is free or held by the actor toggles normally
//   - an item held by someone else is a silent no-op for regular guests
//   - an admin acting on someone else's reservation releases it; the
//     repository itself never decides the override
func (e *PartyEngine) ToggleWishlist(actorID, itemID string) error {
	actor, err := e.users.Get(actorID)
	if err != nil {
		return err
	}
	item, err := e.wishlist.Get(itemID)
	if err != nil {
		return err
	}

	if item.IsTaken && !item.TakenBy(actor.ID) {
		if !actor.IsAdmin {
			return nil
		}
		return e.wishlist.Release(itemID)
	}

	return e.wishlist.Toggle(itemID, actor.ID)
}

// Stats aggregates the organizer dashboard numbers from the guest list.
func (e *PartyEngine) Stats() (models.Stats, error) {
	users, err := e.users.List()
	if err != nil {
		return models.Stats{}, err
	}

	stats := models.Stats{Total: len(users)}
	for _, u := range users {
		if u.HasLoggedIn {
			stats.Confirmed++
		}
		if u.MusicComment != "" {
			stats.WithComment++
		}
		if u.TableID != nil {
			stats.WithTable++
		}
	}

	return stats, nil
}
