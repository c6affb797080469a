package repositories

import (
	"errors"
	"testing"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/store"
)

// setupTestStore creates a store over an in-memory SQLite database with
// migrations applied
func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return store.New(db, nil)
}

func TestUserRepository(t *testing.T) {
	t.Run("List Seeds Guest List", func(t *testing.T) {
		repo := NewUserRepository(setupTestStore(t))

		users, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list users: %v", err)
		}
		if len(users) != len(models.SeedUsers()) {
			t.Errorf("expected %d seeded users, got %d", len(models.SeedUsers()), len(users))
		}
	})

	t.Run("Login Every Seeded Guest", func(t *testing.T) {
		repo := NewUserRepository(setupTestStore(t))

		for _, seeded := range models.SeedUsers() {
			if seeded.ID == "u9" {
				continue // login key "admin" is an alias, not the display name
			}
			user, err := repo.Login(seeded.Name)
			if err != nil {
				t.Fatalf("login %q failed: %v", seeded.Name, err)
			}
			if user.ID != seeded.ID {
				t.Errorf("login %q returned %s, want %s", seeded.Name, user.ID, seeded.ID)
			}
			if !user.HasLoggedIn {
				t.Errorf("login %q should set the login flag", seeded.Name)
			}
		}
	})

	t.Run("Login Is Accent And Case Insensitive", func(t *testing.T) {
		repo := NewUserRepository(setupTestStore(t))

		for _, name := range []string{"maria gomez", "MARÍA GÓMEZ", "  Maria Gomez  "} {
			user, err := repo.Login(name)
			if err != nil {
				t.Fatalf("login %q failed: %v", name, err)
			}
			if user.ID != "u2" {
				t.Errorf("login %q returned %s, want u2", name, user.ID)
			}
		}
	})

	t.Run("Login Is Exact Match Not Substring", func(t *testing.T) {
		repo := NewUserRepository(setupTestStore(t))

		if _, err := repo.Login("maria"); !errors.Is(err, shared.ErrGuestNotFound) {
			t.Errorf("partial name must not log in, got %v", err)
		}
	})

	t.Run("Login Idempotent", func(t *testing.T) {
		st := setupTestStore(t)
		repo := NewUserRepository(st)

		if _, err := repo.Login("Ana Torres"); err != nil {
			t.Fatalf("first login failed: %v", err)
		}

		events, cancel := st.Bus().Subscribe(UsersKey)
		defer cancel()

		user, err := repo.Login("Ana Torres")
		if err != nil {
			t.Fatalf("second login failed: %v", err)
		}
		if !user.HasLoggedIn {
			t.Error("login flag should remain set")
		}

		select {
		case <-events:
			t.Error("repeated login should not rewrite the collection")
		default:
		}
	})

	t.Run("Login Unknown Name", func(t *testing.T) {
		repo := NewUserRepository(setupTestStore(t))

		_, err := repo.Login("Nadie Conocido")
		if !errors.Is(err, shared.ErrGuestNotFound) {
			t.Errorf("expected ErrGuestNotFound, got %v", err)
		}
	})

	t.Run("Update Persists Fields", func(t *testing.T) {
		repo := NewUserRepository(setupTestStore(t))

		user, err := repo.Get("u3")
		if err != nil {
			t.Fatalf("failed to get user: %v", err)
		}

		user.MusicComment = "mucho reggaeton viejo"
		tableID := "t2"
		user.TableID = &tableID
		if err := repo.Update(*user); err != nil {
			t.Fatalf("failed to update user: %v", err)
		}

		fresh, err := repo.Get("u3")
		if err != nil {
			t.Fatalf("failed to re-read user: %v", err)
		}
		if fresh.MusicComment != "mucho reggaeton viejo" {
			t.Errorf("comment not persisted, got %q", fresh.MusicComment)
		}
		if fresh.TableID == nil || *fresh.TableID != "t2" {
			t.Errorf("table assignment not persisted, got %v", fresh.TableID)
		}
	})

	t.Run("Update Unknown Guest", func(t *testing.T) {
		repo := NewUserRepository(setupTestStore(t))

		err := repo.Update(models.User{ID: "u99", Name: "Fantasma", NormalizedName: "fantasma"})
		if !errors.Is(err, shared.ErrGuestNotFound) {
			t.Errorf("expected ErrGuestNotFound, got %v", err)
		}
	})
}

func TestTableRepository(t *testing.T) {
	t.Run("List Seeds Tables", func(t *testing.T) {
		repo := NewTableRepository(setupTestStore(t))

		tables, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list tables: %v", err)
		}
		if len(tables) != 5 {
			t.Errorf("expected 5 tables, got %d", len(tables))
		}
		for _, tb := range tables {
			if tb.Capacity != 8 {
				t.Errorf("table %s: expected capacity 8, got %d", tb.ID, tb.Capacity)
			}
		}
	})

	t.Run("Get Unknown Table", func(t *testing.T) {
		repo := NewTableRepository(setupTestStore(t))

		if _, err := repo.Get("t99"); !errors.Is(err, shared.ErrTableNotFound) {
			t.Errorf("expected ErrTableNotFound, got %v", err)
		}
	})
}

func TestSongRepository(t *testing.T) {
	newSong := func(title, artist string) models.Song {
		return models.Song{
			Title:             title,
			Artist:            artist,
			Platform:          models.PlatformSpotify,
			ThumbnailURL:      "https://example.com/art.jpg",
			SuggestedByUserID: "u1",
		}
	}

	t.Run("Add Assigns ID", func(t *testing.T) {
		repo := NewSongRepository(setupTestStore(t))

		if err := repo.Add(newSong("Yellow", "Coldplay")); err != nil {
			t.Fatalf("failed to add song: %v", err)
		}

		songs, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list songs: %v", err)
		}
		if len(songs) != 1 {
			t.Fatalf("expected 1 song, got %d", len(songs))
		}
		if songs[0].ID == "" {
			t.Error("song ID should be assigned on add")
		}
	})

	t.Run("Duplicate Add Is A No-Op", func(t *testing.T) {
		st := setupTestStore(t)
		repo := NewSongRepository(st)

		if err := repo.Add(newSong("Yellow", "Coldplay")); err != nil {
			t.Fatalf("failed to add song: %v", err)
		}

		events, cancel := st.Bus().Subscribe(SongsKey)
		defer cancel()

		for _, dup := range []models.Song{
			newSong("Yellow", "Coldplay"),
			newSong("YELLOW", "coldplay"),
			newSong("  yellow ", " COLDPLAY "),
		} {
			if err := repo.Add(dup); err != nil {
				t.Fatalf("duplicate add should be silent: %v", err)
			}
		}

		songs, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list songs: %v", err)
		}
		if len(songs) != 1 {
			t.Errorf("expected exactly 1 stored song, got %d", len(songs))
		}

		select {
		case <-events:
			t.Error("duplicate add should not rewrite the collection")
		default:
		}
	})

	t.Run("Invalid Platform Rejected", func(t *testing.T) {
		repo := NewSongRepository(setupTestStore(t))

		song := newSong("Yellow", "Coldplay")
		song.Platform = "soundcloud"
		if err := repo.Add(song); err == nil {
			t.Error("expected validation error for unknown platform")
		}
	})
}

func TestPreferenceRepository(t *testing.T) {
	t.Run("Add And ListByUser", func(t *testing.T) {
		repo := NewPreferenceRepository(setupTestStore(t))

		for _, p := range []models.MusicPreference{
			{UserID: "u1", Genre: "cumbia"},
			{UserID: "u1", Genre: "rock"},
			{UserID: "u2", Genre: "cumbia"},
		} {
			if err := repo.Add(p); err != nil {
				t.Fatalf("failed to add preference: %v", err)
			}
		}

		mine, err := repo.ListByUser("u1")
		if err != nil {
			t.Fatalf("failed to list preferences: %v", err)
		}
		if len(mine) != 2 {
			t.Errorf("expected 2 preferences for u1, got %d", len(mine))
		}
	})

	t.Run("Remove", func(t *testing.T) {
		repo := NewPreferenceRepository(setupTestStore(t))

		if err := repo.Add(models.MusicPreference{ID: "p1", UserID: "u1", Genre: "trap"}); err != nil {
			t.Fatalf("failed to add preference: %v", err)
		}
		if err := repo.Remove("p1"); err != nil {
			t.Fatalf("failed to remove preference: %v", err)
		}

		prefs, err := repo.List()
		if err != nil {
			t.Fatalf("failed to list preferences: %v", err)
		}
		if len(prefs) != 0 {
			t.Errorf("expected no preferences after removal, got %d", len(prefs))
		}
	})
}

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository(setupTestStore(t))

	current, err := repo.Current()
	if err != nil {
		t.Fatalf("failed to read empty session: %v", err)
	}
	if current != nil {
		t.Errorf("expected no session, got %v", current)
	}

	user := models.SeedUsers()[1]
	if err := repo.Save(user); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	current, err = repo.Current()
	if err != nil {
		t.Fatalf("failed to read session: %v", err)
	}
	if current == nil || current.ID != user.ID {
		t.Errorf("expected session for %s, got %v", user.ID, current)
	}

	if err := repo.Clear(); err != nil {
		t.Fatalf("failed to clear session: %v", err)
	}
	current, err = repo.Current()
	if err != nil {
		t.Fatalf("failed to read cleared session: %v", err)
	}
	if current != nil {
		t.Errorf("expected cleared session, got %v", current)
	}
}

func TestStoreErrorsPropagate(t *testing.T) {
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	st := store.New(db, nil)
	repo := NewUserRepository(st)
	if _, err := repo.List(); err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}

	db.Close()

	if _, err := repo.List(); !errors.Is(err, shared.ErrStorage) {
		t.Errorf("expected ErrStorage after close, got %v", err)
	}
}
