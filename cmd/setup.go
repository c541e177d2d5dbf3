package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/mags/internal/formatter"
	"github.com/desertthunder/mags/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase creates the config file when it is missing and applies pending migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	if r.configPath != "" {
		if _, err := os.Stat(r.configPath); os.IsNotExist(err) {
			r.logger.Info("config file not found, creating from template", "path", r.configPath)
			if err := shared.CreateConfigFile(r.configPath); err != nil {
				r.logger.Warn("failed to create config file, using defaults", "error", err)
			} else {
				r.logger.Info("config file created", "path", r.configPath)
			}
		}
	}

	r.logger.Info("initializing database", "path", r.config.Database.Path)

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer r.closeDB(db)

	r.logger.Info("running database migrations")
	count, err := shared.ApplyMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	return r.writePlainln("%s %s", formatter.Success("✓"), "Applied "+formatter.Count(count, "migration"))
}

// SetupRollback reverts the latest applied migration.
func (r *Runner) SetupRollback(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer r.closeDB(db)

	m, err := shared.RollbackMigration(db)
	if err != nil {
		return err
	}

	r.logger.Info("rolled back migration", "version", m.Version, "name", m.Name)
	return r.writePlainln("%s Rolled back %04d_%s", formatter.Success("✓"), m.Version, m.Name)
}

// SetupStatus prints every migration with its applied time.
func (r *Runner) SetupStatus(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer r.closeDB(db)

	states, err := shared.MigrationStatus(db)
	if err != nil {
		return err
	}

	r.writePlainln("%s", formatter.Title("Migrations"))
	for _, s := range states {
		status := formatter.Warning("pending")
		if s.Applied() {
			status = formatter.Success("applied " + s.AppliedAt.Format("2006-01-02 15:04:05"))
		}
		if err := r.writePlainln("%04d_%s  %s", s.Version, s.Name, status); err != nil {
			return err
		}
	}
	return nil
}
