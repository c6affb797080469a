package repositories

import (
	"fmt"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/store"
)

// TableRepository reads the seating tables. Tables carry only name and
// capacity; who sits where is derived from the users collection by the
// caller, fresh on every read, so occupancy never has a second source of
// truth to drift from.
type TableRepository struct {
	store *store.Store
}

// NewTableRepository creates a new [TableRepository] over the given store.
func NewTableRepository(s *store.Store) *TableRepository {
	return &TableRepository{store: s}
}

// List returns all tables, seeding the default seating plan on first access.
func (r *TableRepository) List() ([]models.Table, error) {
	return store.Load(r.store, TablesKey, models.SeedTables())
}

// Get retrieves a table by ID.
func (r *TableRepository) Get(id string) (*models.Table, error) {
	tables, err := r.List()
	if err != nil {
		return nil, err
	}

	for i := range tables {
		if tables[i].ID == id {
			return &tables[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", shared.ErrTableNotFound, id)
}
