package repositories

import (
	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/store"
)

// SessionRepository persists the currently logged-in guest so follow-up
// commands act as that guest without re-entering a name.
type SessionRepository struct {
	store *store.Store
}

// NewSessionRepository creates a new [SessionRepository] over the given store.
func NewSessionRepository(s *store.Store) *SessionRepository {
	return &SessionRepository{store: s}
}

// Current returns the logged-in guest's stored record, or nil when nobody
// is logged in.
//
// The record is a snapshot taken at login; callers that need fresh fields
// should re-read the guest from [UserRepository] by ID.
func (r *SessionRepository) Current() (*models.User, error) {
	user, err := store.Load(r.store, SessionKey, models.User{})
	if err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

// Save records the guest as logged in.
func (r *SessionRepository) Save(user models.User) error {
	return store.Save(r.store, SessionKey, user)
}

// Clear logs the guest out.
func (r *SessionRepository) Clear() error {
	return r.store.Remove(SessionKey)
}
