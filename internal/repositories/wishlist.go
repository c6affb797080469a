package repositories

import (
	"fmt"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/store"
)

// WishlistRepository reads gift items and drives their reservation state
// machine. Each item is in one of three states, collapsed into the stored
// (IsTaken, TakenByUserID) pair: available, taken by the acting guest, or
// taken by someone else.
//
// Toggle is the unconditional storage primitive; who may override someone
// else's reservation is policy and belongs to the caller. The admin path
// uses [WishlistRepository.Release] once the caller has decided to allow it.
type WishlistRepository struct {
	store *store.Store
}

// NewWishlistRepository creates a new [WishlistRepository] over the given store.
func NewWishlistRepository(s *store.Store) *WishlistRepository {
	return &WishlistRepository{store: s}
}

// List returns all gift items, seeding the default gift list on first access.
func (r *WishlistRepository) List() ([]models.WishlistItem, error) {
	return store.Load(r.store, WishlistKey, models.SeedWishlist())
}

// Get retrieves an item by ID.
func (r *WishlistRepository) Get(id string) (*models.WishlistItem, error) {
	items, err := r.List()
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", shared.ErrItemNotFound, id)
}

// Toggle advances the item's reservation state for the acting guest:
//
//   - available → taken by userID
//   - taken by userID → available
//   - taken by another guest → unchanged (silent no-op, nothing written)
func (r *WishlistRepository) Toggle(itemID, userID string) error {
	items, err := r.List()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != itemID {
			continue
		}

		switch {
		case items[i].TakenBy(userID):
			items[i].IsTaken = false
			items[i].TakenByUserID = ""
		case !items[i].IsTaken:
			items[i].IsTaken = true
			items[i].TakenByUserID = userID
		default:
			return nil
		}

		return store.Save(r.store, WishlistKey, items)
	}

	return fmt.Errorf("%w: %s", shared.ErrItemNotFound, itemID)
}

// Release resets an item to available regardless of who holds it. Callers
// gate this on privilege; the repository does not. Releasing an item that
// is already available writes nothing.
func (r *WishlistRepository) Release(itemID string) error {
	items, err := r.List()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != itemID {
			continue
		}

		if !items[i].IsTaken {
			return nil
		}

		items[i].IsTaken = false
		items[i].TakenByUserID = ""
		return store.Save(r.store, WishlistKey, items)
	}

	return fmt.Errorf("%w: %s", shared.ErrItemNotFound, itemID)
}
