package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/luquetti/mis18/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestStoreLoad(t *testing.T) {
	t.Run("Seeds On First Access", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		s := New(db, nil)
		got, err := Load(s, "guests", []string{"ana", "pedro"})
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if len(got) != 2 || got[0] != "ana" {
			t.Errorf("expected seed back, got %v", got)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM collections WHERE key = 'guests'").Scan(&count); err != nil {
			t.Fatalf("failed to count rows: %v", err)
		}
		if count != 1 {
			t.Errorf("expected seeded row, got %d rows", count)
		}
	})

	t.Run("Does Not Reseed", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		s := New(db, nil)
		if _, err := Load(s, "guests", []string{"ana"}); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		got, err := Load(s, "guests", []string{"pedro", "sofia"})
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if len(got) != 1 || got[0] != "ana" {
			t.Errorf("second load must return the stored value, got %v", got)
		}
	})

	t.Run("Empty Stored Value Is Not Absent", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		s := New(db, nil)
		if _, err := Load(s, "songs", []string{}); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
		if err := Save(s, "songs", []string{}); err != nil {
			t.Fatalf("failed to save empty: %v", err)
		}

		got, err := Load(s, "songs", []string{"seeded-again"})
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("emptied collection must stay empty, got %v", got)
		}
	})
}

func TestStoreSave(t *testing.T) {
	t.Run("Publishes Change Event", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		s := New(db, nil)
		events, cancel := s.Bus().Subscribe("wishlist")
		defer cancel()

		if err := Save(s, "wishlist", []string{"w1"}); err != nil {
			t.Fatalf("failed to save: %v", err)
		}

		select {
		case ev := <-events:
			if ev.Collection != "wishlist" {
				t.Errorf("expected wishlist event, got %s", ev.Collection)
			}
			if ev.Name() != "wishlist-changed" {
				t.Errorf("expected wishlist-changed, got %s", ev.Name())
			}
		default:
			t.Fatal("expected a change event after save")
		}
	})

	t.Run("Storage Failure Propagates", func(t *testing.T) {
		db := setupTestDB(t)
		s := New(db, nil)
		db.Close()

		err := Save(s, "wishlist", []string{"w1"})
		if err == nil {
			t.Fatal("expected error saving to closed database")
		}
		if !errors.Is(err, shared.ErrStorage) {
			t.Errorf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("No Event On Failed Save", func(t *testing.T) {
		db := setupTestDB(t)
		s := New(db, nil)
		events, cancel := s.Bus().Subscribe("wishlist")
		defer cancel()
		db.Close()

		if err := Save(s, "wishlist", []string{"w1"}); err == nil {
			t.Fatal("expected save to fail")
		}

		select {
		case <-events:
			t.Error("no event should be published for a dropped write")
		default:
		}
	})

	t.Run("Unserializable Value", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		s := New(db, nil)
		err := Save(s, "bad", func() {})
		if !errors.Is(err, shared.ErrStorage) {
			t.Errorf("expected ErrStorage for unserializable value, got %v", err)
		}
	})
}

func TestStoreRemove(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s := New(db, nil)
	if err := Save(s, "session", "u1"); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if err := s.Remove("session"); err != nil {
		t.Fatalf("failed to remove: %v", err)
	}

	// A fresh load re-seeds because the row is gone.
	got, err := Load(s, "session", "nobody")
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if got != "nobody" {
		t.Errorf("expected reseed after removal, got %v", got)
	}
}
