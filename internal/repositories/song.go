package repositories

import (
	"fmt"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/store"
)

// SongRepository reads and appends guest-suggested songs.
type SongRepository struct {
	store *store.Store
}

// NewSongRepository creates a new [SongRepository] over the given store.
func NewSongRepository(s *store.Store) *SongRepository {
	return &SongRepository{store: s}
}

// List returns all suggested songs. The collection seeds empty; songs only
// exist once guests add them.
func (r *SongRepository) List() ([]models.Song, error) {
	return store.Load(r.store, SongsKey, []models.Song{})
}

// Add appends a song unless one with the same (title, artist) pair already
// exists, compared case-insensitively. The duplicate case is a silent
// no-op so a double-tapped submit or two guests racing on the same song
// cannot produce two records.
//
// An empty ID is filled in before the write.
func (r *SongRepository) Add(song models.Song) error {
	if song.ID == "" {
		song.ID = shared.GenerateID()
	}
	if err := song.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	songs, err := r.List()
	if err != nil {
		return err
	}

	key := song.Key()
	for _, existing := range songs {
		if existing.Key() == key {
			return nil
		}
	}

	songs = append(songs, song)
	return store.Save(r.store, SongsKey, songs)
}
