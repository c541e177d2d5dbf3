// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// newApp builds the root command; the --config flag is shared by every subcommand.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "mags",
		Usage:   "Manage authors, magazines and articles in a local SQLite database",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
				Sources: cli.EnvVars("MAGS_CONFIG"),
			},
		},
		Before:   r.loadConfig,
		Commands: r.register(),
	}
}

// setupCommand handles database initialization and migrations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and migration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Create the config file if missing and apply pending migrations",
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Revert the most recently applied migration",
				Action: r.SetupRollback,
			},
			{
				Name:   "status",
				Usage:  "List migrations and whether they have been applied",
				Action: r.SetupStatus,
			},
		},
	}
}

// seedCommand replaces the database contents with sample data.
func seedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Clear the database and insert sample authors, magazines and articles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "fixture",
				Usage: "Path to a TOML fixture (defaults to the built-in sample data)",
			},
			&cli.Int64Flag{
				Name:  "random-seed",
				Usage: "Seed for the random article generator (overrides config)",
			},
			&cli.IntFlag{
				Name:  "extra",
				Usage: "Number of random articles to add (overrides config)",
				Value: -1,
			},
		},
		Action: r.Seed,
	}
}

// tablesCommand lists the database tables for debugging.
func tablesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tables",
		Usage:  "List the tables in the database",
		Action: r.Tables,
	}
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: true,
		},
	}
}

func authorsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "authors",
		Usage:  "List all authors",
		Flags:  listFlags(),
		Action: r.Authors,
	}
}

func magazinesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "magazines",
		Aliases: []string{"mags"},
		Usage:   "List all magazines",
		Flags:   listFlags(),
		Action:  r.Magazines,
	}
}

func articlesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "articles",
		Usage: "List all articles",
		Flags: append(listFlags(),
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Output CSV",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write CSV to this file instead of stdout",
			},
		),
		Action: r.Articles,
	}
}

func contributorsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "contributors",
		Usage: "List a magazine's contributing authors",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "magazine", UsageText: "magazine name or id"},
		},
		Action: r.Contributors,
	}
}

func topicsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "topics",
		Usage: "List the categories an author has written in",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "author", UsageText: "author name or id"},
		},
		Action: r.Topics,
	}
}

func reportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Summarize a magazine's articles and authors",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "magazine", UsageText: "magazine name or id"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Output Markdown",
			},
		},
		Action: r.Report,
	}
}
