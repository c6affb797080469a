package main

import (
	"context"
	"fmt"

	"github.com/luquetti/mis18/internal/formatter"
	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/urfave/cli/v3"
)

// requireAdmin loads the session and rejects non-organizer guests.
func (r *Runner) requireAdmin() error {
	user, err := r.currentGuest()
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return fmt.Errorf("%w: organizer only", shared.ErrNotAuthorized)
	}
	return nil
}

// AdminStats prints the organizer dashboard numbers.
func (r *Runner) AdminStats(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}
	if err := r.requireAdmin(); err != nil {
		return err
	}

	stats, err := r.engine.Stats()
	if err != nil {
		return fmt.Errorf("failed to aggregate stats: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(stats, true)
	}

	r.writePlainHeader("Party Stats")
	r.writePlain("Confirmed:     %d/%d\n", stats.Confirmed, stats.Total)
	r.writePlain("With comment:  %d\n", stats.WithComment)
	r.writePlain("With table:    %d\n", stats.WithTable)
	return nil
}

// AdminExport writes the full organizer export: guest CSV, seating chart,
// playlist CSV and stats JSON.
func (r *Runner) AdminExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}
	if err := r.requireAdmin(); err != nil {
		return err
	}

	users, err := r.engine.Guests()
	if err != nil {
		return fmt.Errorf("failed to list guests: %w", err)
	}
	seating, err := r.engine.Seating()
	if err != nil {
		return fmt.Errorf("failed to join seating: %w", err)
	}
	songs, err := r.engine.Songs()
	if err != nil {
		return fmt.Errorf("failed to list playlist: %w", err)
	}
	stats, err := r.engine.Stats()
	if err != nil {
		return fmt.Errorf("failed to aggregate stats: %w", err)
	}

	tableList := make([]models.Table, len(seating))
	for i, seat := range seating {
		tableList[i] = seat.Table
	}

	result, err := formatter.WritePartyExport(users, tableList, seating, songs, stats, cmd.String("output"))
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.logger.Info("export complete", "base", cmd.String("output"))
	r.writePlain("✓ wrote %s\n", result.GuestsFile)
	r.writePlain("✓ wrote %s\n", result.SeatingFile)
	r.writePlain("✓ wrote %s\n", result.PlaylistFile)
	r.writePlain("✓ wrote %s\n", result.StatsFile)
	return nil
}

// AdminRelease frees another guest's gift reservation.
func (r *Runner) AdminRelease(ctx context.Context, cmd *cli.Command) error {
	itemID := cmd.StringArg("item-id")
	if itemID == "" {
		return fmt.Errorf("%w: item id", shared.ErrMissingArgument)
	}

	if err := r.ensureStore(); err != nil {
		return err
	}
	if err := r.requireAdmin(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	if err := r.engine.ToggleWishlist(user.ID, itemID); err != nil {
		return fmt.Errorf("release failed: %w", err)
	}

	r.writePlain("✓ reservation cleared\n")
	return nil
}
