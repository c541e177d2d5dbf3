package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mags/internal/formatter"
	"github.com/desertthunder/mags/internal/repositories"
	"github.com/desertthunder/mags/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, seedCommand, tablesCommand,
		authorsCommand, magazinesCommand, articlesCommand,
		contributorsCommand, topicsCommand, reportCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig resolves the configuration named by the --config flag unless one was injected.
func (r *Runner) loadConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if path := cmd.String("config"); path != "" {
		r.configPath = path
	}

	if r.config == nil {
		config, err := shared.ResolveConfig(r.configPath)
		if err != nil {
			return ctx, fmt.Errorf("failed to load config: %w", err)
		}
		r.config = config
	}

	if err := shared.SetLogLevel(r.logger, r.config.Log.Level); err != nil {
		return ctx, err
	}
	r.logger.Debug("loaded config", "path", r.configPath, "database", r.config.Database.Path)
	return ctx, nil
}

// openRepos opens the configured database, applies pending migrations and returns repositories over it.
//
// The returned function closes the database.
func (r *Runner) openRepos() (*repositories.Repositories, func(), error) {
	db, err := r.openDB()
	if err != nil {
		return nil, nil, err
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := repositories.New(db, repositories.Options{
		ContributorThreshold: r.config.Rules.ContributorThreshold,
		Logger:               r.logger,
	})
	return repos, func() { r.closeDB(db) }, nil
}

// openDB opens and configures the database named in the config without migrating it.
func (r *Runner) openDB() (*sql.DB, error) {
	if r.config == nil {
		r.config = shared.DefaultConfig()
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	return db, nil
}

func (r *Runner) closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		r.logger.Warn("failed to close database", "error", err)
	}
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
	return r.writePlain(format+"\n", args...)
}

// reportError writes err to w as a styled one-line failure message.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, formatter.Error("✗ "+err.Error()))
}

// requireArg returns the named positional argument or [shared.ErrMissingArgument].
func requireArg(cmd *cli.Command, name string) (string, error) {
	v := cmd.StringArg(name)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", shared.ErrMissingArgument, name)
	}
	return v, nil
}

// lookup resolves a positional argument that may be a numeric id or a name.
func lookup[T any](arg string, byID func(int64) (T, error), byName func(string) (T, error)) (T, error) {
	id, err := shared.ParseID(arg)
	if err != nil {
		return byName(arg)
	}
	v, err := byID(id)
	if errors.Is(err, shared.ErrNotFound) {
		return byName(arg)
	}
	return v, err
}
