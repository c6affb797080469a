package main

import (
	"context"
	"fmt"

	"github.com/luquetti/mis18/internal/shared"
	"github.com/urfave/cli/v3"
)

// GuestLogin identifies a guest by name and persists the session.
func (r *Runner) GuestLogin(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: guest name", shared.ErrMissingArgument)
	}

	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.engine.Login(name)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := r.session.Save(*user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	r.logger.Info("guest logged in", "id", user.ID, "name", user.Name)
	r.writePlain("Hola %s! 🎉\n", user.FirstName())
	return nil
}

// GuestLogout clears the persisted session.
func (r *Runner) GuestLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	if err := r.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	r.writePlain("Session cleared\n")
	return nil
}

// GuestWhoami prints the logged-in guest.
func (r *Runner) GuestWhoami(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	user, err := r.currentGuest()
	if err != nil {
		return err
	}

	role := "guest"
	if user.IsAdmin {
		role = "admin"
	}
	r.writePlain("%s (%s, %s)\n", user.Name, user.ID, role)
	return nil
}

// GuestList prints every invited guest, optionally restricted to those
// that have logged in.
func (r *Runner) GuestList(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	users, err := r.engine.Guests()
	if err != nil {
		return fmt.Errorf("failed to list guests: %w", err)
	}
	if cmd.Bool("confirmed") {
		if users, err = r.engine.ConfirmedGuests(); err != nil {
			return fmt.Errorf("failed to list confirmed guests: %w", err)
		}
	}

	if cmd.Bool("json") {
		return r.writeJSON(users, true)
	}

	r.writePlainHeader(fmt.Sprintf("Guests (%d)", len(users)))
	for _, u := range users {
		mark := " "
		if u.HasLoggedIn {
			mark = "✓"
		}
		r.writePlain("%s %-20s %-10s %s\n", mark, u.Name, u.GroupName, u.ID)
	}
	return nil
}
