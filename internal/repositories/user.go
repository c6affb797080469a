package repositories

import (
	"fmt"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/store"
)

// UserRepository reads and mutates the seeded guest list. Guests are never
// created or deleted at runtime; only their login flag, table choice, and
// music comment change.
type UserRepository struct {
	store *store.Store
}

// NewUserRepository creates a new [UserRepository] over the given store.
func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// List returns all guests, seeding the fixed guest list on first access.
func (r *UserRepository) List() ([]models.User, error) {
	return store.Load(r.store, UsersKey, models.SeedUsers())
}

// Get retrieves a guest by ID.
func (r *UserRepository) Get(id string) (*models.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", shared.ErrGuestNotFound, id)
}

// Login finds the guest whose stored normalized key exactly matches the
// normalized input. On the first successful login the guest's login flag
// is set and persisted; repeated logins are idempotent.
//
// A miss is reported as [shared.ErrGuestNotFound]. A wrong name is normal
// control flow, not a fault.
func (r *UserRepository) Login(name string) (*models.User, error) {
	users, err := r.List()
	if err != nil {
		return nil, err
	}

	normalized := shared.Normalize(name)
	for i := range users {
		if users[i].NormalizedName != normalized {
			continue
		}

		if !users[i].HasLoggedIn {
			users[i].HasLoggedIn = true
			if err := r.Update(users[i]); err != nil {
				return nil, err
			}
		}
		return &users[i], nil
	}

	return nil, fmt.Errorf("%w: %q", shared.ErrGuestNotFound, name)
}

// Update replaces the stored record for the guest with the same ID and
// rewrites the users collection.
func (r *UserRepository) Update(user models.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	users, err := r.List()
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return store.Save(r.store, UsersKey, users)
		}
	}

	return fmt.Errorf("%w: %s", shared.ErrGuestNotFound, user.ID)
}
