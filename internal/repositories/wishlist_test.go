package repositories

import (
	"errors"
	"testing"

	"github.com/luquetti/mis18/internal/shared"
)

func TestWishlistRepository(t *testing.T) {
	t.Run("List Seeds Gift List", func(t *testing.T) {
		repo := NewWishlistRepository(setupTestStore(t))

		items, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list wishlist: %v", err)
		}
		if len(items) != 6 {
			t.Errorf("expected 6 seeded items, got %d", len(items))
		}

		taken, err := repo.Get("w4")
		if err != nil {
			t.Fatalf("failed to get w4: %v", err)
		}
		if !taken.TakenBy("u2") {
			t.Error("w4 should seed as taken by u2")
		}
	})

	t.Run("Toggle Round Trip", func(t *testing.T) {
		repo := NewWishlistRepository(setupTestStore(t))

		// Available → taken by A
		if err := repo.Toggle("w1", "uA"); err != nil {
			t.Fatalf("failed to take item: %v", err)
		}
		item, err := repo.Get("w1")
		if err != nil {
			t.Fatalf("failed to get item: %v", err)
		}
		if !item.TakenBy("uA") {
			t.Errorf("expected item taken by uA, got %+v", item)
		}

		// Taken by A, toggled by B → unchanged
		if err := repo.Toggle("w1", "uB"); err != nil {
			t.Fatalf("non-owner toggle should be silent: %v", err)
		}
		item, err = repo.Get("w1")
		if err != nil {
			t.Fatalf("failed to get item: %v", err)
		}
		if !item.TakenBy("uA") {
			t.Errorf("non-owner toggle must not change state, got %+v", item)
		}

		// Taken by A, toggled by A → available again
		if err := repo.Toggle("w1", "uA"); err != nil {
			t.Fatalf("failed to release item: %v", err)
		}
		item, err = repo.Get("w1")
		if err != nil {
			t.Fatalf("failed to get item: %v", err)
		}
		if item.IsTaken || item.TakenByUserID != "" {
			t.Errorf("expected item released, got %+v", item)
		}
	})

	t.Run("Non-Owner Toggle Writes Nothing", func(t *testing.T) {
		st := setupTestStore(t)
		repo := NewWishlistRepository(st)

		if err := repo.Toggle("w1", "uA"); err != nil {
			t.Fatalf("failed to take item: %v", err)
		}

		events, cancel := st.Bus().Subscribe(WishlistKey)
		defer cancel()

		if err := repo.Toggle("w1", "uB"); err != nil {
			t.Fatalf("non-owner toggle failed: %v", err)
		}

		select {
		case <-events:
			t.Error("non-owner toggle should not rewrite the collection")
		default:
		}
	})

	t.Run("Toggle Unknown Item", func(t *testing.T) {
		repo := NewWishlistRepository(setupTestStore(t))

		if err := repo.Toggle("w99", "uA"); !errors.Is(err, shared.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("Release Frees Any Reservation", func(t *testing.T) {
		repo := NewWishlistRepository(setupTestStore(t))

		// w4 seeds taken by u2; Release does not care who holds it.
		if err := repo.Release("w4"); err != nil {
			t.Fatalf("failed to release: %v", err)
		}

		item, err := repo.Get("w4")
		if err != nil {
			t.Fatalf("failed to get item: %v", err)
		}
		if item.IsTaken || item.TakenByUserID != "" {
			t.Errorf("expected released item, got %+v", item)
		}
	})

	t.Run("Release Available Item Writes Nothing", func(t *testing.T) {
		st := setupTestStore(t)
		repo := NewWishlistRepository(st)

		if _, err := repo.List(); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		events, cancel := st.Bus().Subscribe(WishlistKey)
		defer cancel()

		if err := repo.Release("w1"); err != nil {
			t.Fatalf("release of available item failed: %v", err)
		}

		select {
		case <-events:
			t.Error("releasing an available item should not rewrite the collection")
		default:
		}
	})
}
