package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/desertthunder/mags/internal/formatter"
	"github.com/desertthunder/mags/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Seed clears the database and writes the sample fixture.
func (r *Runner) Seed(ctx context.Context, cmd *cli.Command) error {
	config := r.config.Seed
	if path := cmd.String("fixture"); path != "" {
		config.Fixture = path
	}
	if cmd.IsSet("random-seed") {
		config.RandomSeed = cmd.Int64("random-seed")
	}
	if extra := cmd.Int("extra"); extra >= 0 {
		config.ExtraArticles = extra
	}

	fixture, err := tasks.LoadFixture(config.Fixture)
	if err != nil {
		return err
	}

	repos, closeDB, err := r.openRepos()
	if err != nil {
		return err
	}
	defer closeDB()

	progress := make(chan tasks.ProgressUpdate, 16)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for update := range progress {
			r.logger.Debug(update.Message, "phase", update.Phase, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := tasks.NewSeeder(repos, fixture, config, r.logger).Run(progress)
	close(progress)
	wg.Wait()
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	r.writePlainln("%s Seeded %s, %s and %s",
		formatter.Success("✓"),
		formatter.Count(result.Authors, "author"),
		formatter.Count(result.Magazines, "magazine"),
		formatter.Count(result.Articles, "article"),
	)
	if result.Failed > 0 {
		r.writePlainln("%s", formatter.Warning(fmt.Sprintf("Skipped %s", formatter.Count(result.Failed, "random article"))))
	}
	return nil
}
