package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/urfave/cli/v3"
)

// MusicComment stores a free-text music request for the logged-in guest.
func (r *Runner) MusicComment(ctx context.Context, cmd *cli.Command) error {
	text := cmd.StringArg("text")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: comment text", shared.ErrMissingArgument)
	}

	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	if err := r.engine.SetMusicComment(user.ID, text); err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	r.writePlain("✓ comment saved\n")
	return nil
}

// GenreAdd picks a genre from the vocabulary for the logged-in guest.
func (r *Runner) GenreAdd(ctx context.Context, cmd *cli.Command) error {
	genre := cmd.StringArg("genre")
	if genre == "" {
		return fmt.Errorf("%w: genre", shared.ErrMissingArgument)
	}

	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	pref, err := r.engine.AddGenre(user.ID, genre)
	if err != nil {
		return fmt.Errorf("failed to add genre: %w", err)
	}

	r.writePlain("✓ %s added (%s)\n", pref.Genre, pref.ID)
	return nil
}

// GenreRemove deletes one of the logged-in guest's picks by id.
func (r *Runner) GenreRemove(ctx context.Context, cmd *cli.Command) error {
	prefID := cmd.StringArg("pref-id")
	if prefID == "" {
		return fmt.Errorf("%w: pick id", shared.ErrMissingArgument)
	}

	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	if err := r.engine.RemoveGenre(user.ID, prefID); err != nil {
		return fmt.Errorf("failed to remove genre: %w", err)
	}

	r.writePlain("✓ pick removed\n")
	return nil
}

// GenreList prints the logged-in guest's genre picks.
func (r *Runner) GenreList(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	prefs, err := r.engine.Preferences(user.ID)
	if err != nil {
		return fmt.Errorf("failed to list picks: %w", err)
	}

	if len(prefs) == 0 {
		r.writePlain("No picks yet. Try 'mis18 music genre add cumbia'\n")
		return nil
	}
	for _, p := range prefs {
		r.writePlain("%-12s %s\n", p.Genre, p.ID)
	}
	return nil
}

// MusicTrends prints the most requested genres.
func (r *Runner) MusicTrends(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	trends, err := r.engine.GenreTrends(5)
	if err != nil {
		return fmt.Errorf("failed to aggregate trends: %w", err)
	}

	r.writePlainHeader("Genre Trends")
	if len(trends) == 0 {
		r.writePlain("No picks yet\n")
		return nil
	}
	for i, trend := range trends {
		r.writePlain("%d. %-12s %s (%d)\n", i+1, trend.Name, strings.Repeat("█", trend.Value), trend.Value)
	}
	return nil
}

// MusicSearch queries the configured search provider.
func (r *Runner) MusicSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	if err := r.ensureStore(); err != nil {
		return err
	}

	results, err := r.engine.SearchSongs(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, true)
	}

	if len(results) == 0 {
		r.writePlain("No matches for %q\n", query)
		return nil
	}
	for i, song := range results {
		r.writePlain("%d. %s - %s [%s]\n", i+1, song.Artist, song.Title, song.Platform)
	}
	return nil
}

// MusicSuggest adds a song to the party playlist for the logged-in guest.
func (r *Runner) MusicSuggest(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	song := models.Song{
		Title:    cmd.String("title"),
		Artist:   cmd.String("artist"),
		Platform: models.Platform(cmd.String("platform")),
		LinkURL:  cmd.String("link"),
	}
	if err := r.engine.SuggestSong(user.ID, song); err != nil {
		return fmt.Errorf("failed to suggest song: %w", err)
	}

	r.writePlain("✓ %s - %s suggested\n", song.Artist, song.Title)
	return nil
}

// MusicPlaylist prints the suggested party playlist.
func (r *Runner) MusicPlaylist(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	songs, err := r.engine.Songs()
	if err != nil {
		return fmt.Errorf("failed to list playlist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, true)
	}

	r.writePlainHeader(fmt.Sprintf("Playlist (%d)", len(songs)))
	for i, song := range songs {
		r.writePlain("%d. %s - %s [%s]\n", i+1, song.Artist, song.Title, song.Platform)
	}
	return nil
}
