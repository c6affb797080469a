package repositories

import (
	"fmt"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/store"
)

// PreferenceRepository reads and mutates guest genre picks.
//
// It stores what it is given: uniqueness per guest and vocabulary
// membership are checked by the edit layer before Add is called, keeping
// the storage contract simple.
type PreferenceRepository struct {
	store *store.Store
}

// NewPreferenceRepository creates a new [PreferenceRepository] over the given store.
func NewPreferenceRepository(s *store.Store) *PreferenceRepository {
	return &PreferenceRepository{store: s}
}

// List returns all genre picks across guests.
func (r *PreferenceRepository) List() ([]models.MusicPreference, error) {
	return store.Load(r.store, PrefsKey, []models.MusicPreference{})
}

// ListByUser returns the genre picks of a single guest.
func (r *PreferenceRepository) ListByUser(userID string) ([]models.MusicPreference, error) {
	prefs, err := r.List()
	if err != nil {
		return nil, err
	}

	var mine []models.MusicPreference
	for _, p := range prefs {
		if p.UserID == userID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

// Add appends a genre pick, filling in an empty ID before the write.
func (r *PreferenceRepository) Add(pref models.MusicPreference) error {
	if pref.ID == "" {
		pref.ID = shared.GenerateID()
	}
	if err := pref.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	prefs, err := r.List()
	if err != nil {
		return err
	}

	prefs = append(prefs, pref)
	return store.Save(r.store, PrefsKey, prefs)
}

// Remove deletes the genre pick with the given ID. Removing an unknown ID
// still rewrites the collection; the result is the same either way.
func (r *PreferenceRepository) Remove(id string) error {
	prefs, err := r.List()
	if err != nil {
		return err
	}

	kept := prefs[:0]
	for _, p := range prefs {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	return store.Save(r.store, PrefsKey, kept)
}
