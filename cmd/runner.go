package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/repositories"
	"github.com/luquetti/mis18/internal/services"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/store"
	"github.com/luquetti/mis18/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	search  services.SearchService
	logger  *log.Logger
	output  io.Writer
	db      *sql.DB
	store   *store.Store
	engine  *tasks.PartyEngine
	session *repositories.SessionRepository
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Search services.SearchService
	Logger *log.Logger
	Output io.Writer
	Store  *store.Store
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	r := &Runner{
		config: opts.Config,
		search: opts.Search,
		logger: opts.Logger,
		output: opts.Output,
	}

	if opts.Store != nil {
		r.adopt(opts.Store)
	}

	return r
}

// SetLogger swaps the runner's logger, used when the TUI redirects logs to a file.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Close releases the database handle if the runner opened one.
func (r *Runner) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Runner) adopt(s *store.Store) {
	r.store = s
	r.engine = tasks.NewPartyEngine(s, r.search)
	r.session = repositories.NewSessionRepository(s)
}

// ensureStore opens the configured database on first use. Migrations are
// idempotent, so running them on every open keeps fresh databases usable
// without a separate setup step.
func (r *Runner) ensureStore() error {
	if r.store != nil {
		return nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.db = db
	r.adopt(store.New(db, nil))
	return nil
}

// currentGuest loads the persisted session, failing when nobody is logged in.
func (r *Runner) currentGuest() (*models.User, error) {
	user, err := r.session.Current()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: log in first with 'mis18 guest login <name>'", shared.ErrNotAuthorized)
	}
	return user, nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, guestCommand, tableCommand, musicCommand, wishlistCommand, adminCommand, serveCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
