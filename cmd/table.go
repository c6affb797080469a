package main

import (
	"context"
	"fmt"

	"github.com/luquetti/mis18/internal/shared"
	"github.com/urfave/cli/v3"
)

// TableList prints the seating chart with live occupancy.
func (r *Runner) TableList(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	seating, err := r.engine.Seating()
	if err != nil {
		return fmt.Errorf("failed to join seating: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(seating, true)
	}

	r.writePlainHeader("Seating")
	for _, seat := range seating {
		marker := ""
		if seat.Full() {
			marker = " (full)"
		}
		r.writePlain("%s  %d/%d%s\n", seat.Table.Name, len(seat.Occupants), seat.Table.Capacity, marker)
		for _, u := range seat.Occupants {
			r.writePlain("  · %s\n", u.Name)
		}
	}
	return nil
}

// TableAssign seats the logged-in guest at the given table.
func (r *Runner) TableAssign(ctx context.Context, cmd *cli.Command) error {
	tableID := cmd.StringArg("table-id")
	if tableID == "" {
		return fmt.Errorf("%w: table id", shared.ErrMissingArgument)
	}

	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	if err := r.engine.AssignTable(user.ID, tableID); err != nil {
		return fmt.Errorf("assignment failed: %w", err)
	}

	r.logger.Info("table assigned", "guest", user.ID, "table", tableID)
	r.writePlain("✓ %s seated at %s\n", user.FirstName(), tableID)
	return nil
}

// TableLeave gives up the logged-in guest's seat.
func (r *Runner) TableLeave(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	if err := r.engine.LeaveTable(user.ID); err != nil {
		return fmt.Errorf("failed to leave table: %w", err)
	}

	r.writePlain("✓ %s left the table\n", user.FirstName())
	return nil
}
