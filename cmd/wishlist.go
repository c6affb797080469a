package main

import (
	"context"
	"fmt"

	"github.com/luquetti/mis18/internal/shared"
	"github.com/urfave/cli/v3"
)

// WishlistList prints every gift idea and who reserved it.
func (r *Runner) WishlistList(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	items, err := r.engine.Wishlist()
	if err != nil {
		return fmt.Errorf("failed to list wishlist: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, true)
	}

	users, err := r.engine.Guests()
	if err != nil {
		return fmt.Errorf("failed to list guests: %w", err)
	}
	names := map[string]string{}
	for _, u := range users {
		names[u.ID] = u.Name
	}

	r.writePlainHeader("Wishlist")
	for _, item := range items {
		status := "available"
		if item.IsTaken {
			status = "taken"
			if name, ok := names[item.TakenByUserID]; ok {
				status = fmt.Sprintf("taken by %s", name)
			}
		}
		r.writePlain("%-20s %-24s %s\n", item.Name, status, item.ID)
	}
	return nil
}

// WishlistToggle reserves or releases a gift for the logged-in guest.
func (r *Runner) WishlistToggle(ctx context.Context, cmd *cli.Command) error {
	itemID := cmd.StringArg("item-id")
	if itemID == "" {
		return fmt.Errorf("%w: item id", shared.ErrMissingArgument)
	}

	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	if err := r.engine.ToggleWishlist(user.ID, itemID); err != nil {
		return fmt.Errorf("toggle failed: %w", err)
	}

	r.writePlain("✓ done\n")
	return nil
}
