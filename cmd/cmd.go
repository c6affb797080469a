// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Path to configuration file",
	Value:   "config.toml",
}

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize config and database",
		Flags:  []cli.Flag{configFlag},
		Action: r.Setup,
	}
}

// guestCommand handles guest identity operations
func guestCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "guest",
		Usage: "Guest identity operations",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in by guest name (accent and case insensitive)",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.GuestLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.GuestLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the logged-in guest",
				Action: r.GuestWhoami,
			},
			{
				Name:  "list",
				Usage: "List all invited guests",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "confirmed",
						Usage: "Only guests that have logged in",
					},
				},
				Action: r.GuestList,
			},
		},
	}
}

// tableCommand handles seating operations
func tableCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "table",
		Aliases: []string{"mesa"},
		Usage:   "Seating chart operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show every table with its occupants",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TableList,
			},
			{
				Name:  "assign",
				Usage: "Sit the logged-in guest at a table",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "table-id"},
				},
				Action: r.TableAssign,
			},
			{
				Name:   "leave",
				Usage:  "Give up the current seat",
				Action: r.TableLeave,
			},
		},
	}
}

// musicCommand handles comments, genre picks and the suggested playlist
func musicCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "music",
		Usage: "Music comments, genres and song suggestions",
		Commands: []*cli.Command{
			{
				Name:  "comment",
				Usage: "Store a free-text music request",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "text"},
				},
				Action: r.MusicComment,
			},
			{
				Name:  "genre",
				Usage: "Manage genre picks",
				Commands: []*cli.Command{
					{
						Name:  "add",
						Usage: "Pick a genre from the vocabulary",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "genre"},
						},
						Action: r.GenreAdd,
					},
					{
						Name:  "remove",
						Usage: "Remove a genre pick by id",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "pref-id"},
						},
						Action: r.GenreRemove,
					},
					{
						Name:   "list",
						Usage:  "List the logged-in guest's picks",
						Action: r.GenreList,
					},
				},
			},
			{
				Name:   "trends",
				Usage:  "Show the most requested genres",
				Action: r.MusicTrends,
			},
			{
				Name:  "search",
				Usage: "Search the song catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "query"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MusicSearch,
			},
			{
				Name:  "suggest",
				Usage: "Add a song to the party playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Song title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "artist",
						Usage:    "Artist name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "platform",
						Usage: "Source platform (spotify or youtube)",
						Value: "spotify",
					},
					&cli.StringFlag{
						Name:  "link",
						Usage: "Play link URL",
					},
				},
				Action: r.MusicSuggest,
			},
			{
				Name:  "playlist",
				Usage: "Show the suggested party playlist",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MusicPlaylist,
			},
		},
	}
}

// wishlistCommand handles gift reservations
func wishlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "wishlist",
		Aliases: []string{"regalos"},
		Usage:   "Gift wishlist operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show every gift idea and who reserved it",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.WishlistList,
			},
			{
				Name:  "toggle",
				Usage: "Reserve or release a gift",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "item-id"},
				},
				Action: r.WishlistToggle,
			},
		},
	}
}

// adminCommand handles organizer operations
func adminCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "Organizer operations (requires an admin guest session)",
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "Show the organizer dashboard numbers",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AdminStats,
			},
			{
				Name:  "export",
				Usage: "Export guests, seating, playlist and stats to files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Base path for export files",
						Value:   "mis18",
					},
				},
				Action: r.AdminExport,
			},
			{
				Name:  "release",
				Usage: "Free another guest's gift reservation",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "item-id"},
				},
				Action: r.AdminRelease,
			},
		},
	}
}

// serveCommand starts the JSON API server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the party API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Bind address (overrides config)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Bind port (overrides config)",
			},
		},
		Action: r.Serve,
	}
}

// tuiCommand returns the top-level TUI command for interactive party management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive guest TUI",
		Action:  r.TUI,
	}
}
