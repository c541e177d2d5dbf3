package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mags/internal/formatter"
	"github.com/desertthunder/mags/internal/models"
	"github.com/desertthunder/mags/internal/shared"
	"github.com/urfave/cli/v3"
)

type authorJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type magazineJSON struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type articleJSON struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"author_id"`
	MagazineID int64  `json:"magazine_id"`
}

func authorsJSON(authors []*models.Author) []authorJSON {
	out := make([]authorJSON, len(authors))
	for i, a := range authors {
		out[i] = authorJSON{ID: a.ID(), Name: a.Name()}
	}
	return out
}

// Tables lists the user tables in the database.
func (r *Runner) Tables(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer r.closeDB(db)

	tables, err := shared.ListTables(db)
	if err != nil {
		return err
	}
	return r.writePlainln("%s", formatter.ListTable("Table", "table", tables))
}

// Authors lists every author.
func (r *Runner) Authors(ctx context.Context, cmd *cli.Command) error {
	repos, closeDB, err := r.openRepos()
	if err != nil {
		return err
	}
	defer closeDB()

	authors, err := repos.Authors.All()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(authorsJSON(authors), cmd.Bool("pretty"))
	}
	return r.writePlainln("%s", formatter.AuthorsTable(authors))
}

// Magazines lists every magazine.
func (r *Runner) Magazines(ctx context.Context, cmd *cli.Command) error {
	repos, closeDB, err := r.openRepos()
	if err != nil {
		return err
	}
	defer closeDB()

	magazines, err := repos.Magazines.All()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		out := make([]magazineJSON, len(magazines))
		for i, m := range magazines {
			out[i] = magazineJSON{ID: m.ID(), Name: m.Name(), Category: m.Category()}
		}
		return r.writeJSON(out, cmd.Bool("pretty"))
	}
	return r.writePlainln("%s", formatter.MagazinesTable(magazines))
}

// Articles lists every article as a table, JSON or CSV.
func (r *Runner) Articles(ctx context.Context, cmd *cli.Command) error {
	repos, closeDB, err := r.openRepos()
	if err != nil {
		return err
	}
	defer closeDB()

	articles, err := repos.Articles.All()
	if err != nil {
		return err
	}

	switch {
	case cmd.String("output") != "":
		path := cmd.String("output")
		if err := formatter.WriteArticlesCSV(articles, path); err != nil {
			return err
		}
		r.logger.Info("exported articles", "path", path, "count", len(articles))
		return r.writePlainln("%s Exported %s to %s", formatter.Success("✓"), formatter.Count(len(articles), "article"), path)
	case cmd.Bool("csv"):
		data, err := formatter.ExportArticlesCSV(articles)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case cmd.Bool("json"):
		out := make([]articleJSON, len(articles))
		for i, a := range articles {
			out[i] = articleJSON{
				ID:         a.ID(),
				Title:      a.Title(),
				Content:    a.Content(),
				AuthorID:   a.AuthorID(),
				MagazineID: a.MagazineID(),
			}
		}
		return r.writeJSON(out, cmd.Bool("pretty"))
	default:
		return r.writePlainln("%s", formatter.ArticlesTable(articles))
	}
}

// Contributors lists the authors with at least the configured number of articles in a magazine.
func (r *Runner) Contributors(ctx context.Context, cmd *cli.Command) error {
	arg, err := requireArg(cmd, "magazine")
	if err != nil {
		return err
	}

	repos, closeDB, err := r.openRepos()
	if err != nil {
		return err
	}
	defer closeDB()

	magazine, err := lookup(arg, repos.Magazines.FindByID, repos.Magazines.FindByName)
	if err != nil {
		return fmt.Errorf("magazine %q: %w", arg, err)
	}

	authors, err := repos.Magazines.ContributingAuthors(magazine)
	if err != nil {
		return err
	}

	r.writePlainln("%s", formatter.Title(fmt.Sprintf("%s: authors with %d+ articles", magazine.Name(), repos.ContributorThreshold())))
	if len(authors) == 0 {
		return r.writePlainln("%s", formatter.Muted("No contributing authors"))
	}
	return r.writePlainln("%s", formatter.AuthorsTable(authors))
}

// Topics lists the distinct magazine categories an author has written for.
func (r *Runner) Topics(ctx context.Context, cmd *cli.Command) error {
	arg, err := requireArg(cmd, "author")
	if err != nil {
		return err
	}

	repos, closeDB, err := r.openRepos()
	if err != nil {
		return err
	}
	defer closeDB()

	author, err := lookup(arg, repos.Authors.FindByID, repos.Authors.FindByName)
	if err != nil {
		return fmt.Errorf("author %q: %w", arg, err)
	}

	topics, err := repos.Authors.TopicAreas(author)
	if err != nil {
		return err
	}

	r.writePlainln("%s", formatter.Title(author.Name()))
	if len(topics) == 0 {
		return r.writePlainln("%s", formatter.Muted("No articles yet"))
	}
	return r.writePlainln("%s", formatter.ListTable("Category", "category", topics))
}

// Report summarizes one magazine as plain text or Markdown.
func (r *Runner) Report(ctx context.Context, cmd *cli.Command) error {
	arg, err := requireArg(cmd, "magazine")
	if err != nil {
		return err
	}

	repos, closeDB, err := r.openRepos()
	if err != nil {
		return err
	}
	defer closeDB()

	magazine, err := lookup(arg, repos.Magazines.FindByID, repos.Magazines.FindByName)
	if err != nil {
		return fmt.Errorf("magazine %q: %w", arg, err)
	}

	report := formatter.MagazineReport{Magazine: magazine, Threshold: repos.ContributorThreshold()}
	if report.Titles, err = repos.Magazines.ArticleTitles(magazine); err != nil {
		return err
	}
	if report.Authors, err = repos.Magazines.Authors(magazine); err != nil {
		return err
	}
	if report.Contributors, err = repos.Magazines.ContributingAuthors(magazine); err != nil {
		return err
	}

	if cmd.Bool("markdown") {
		return r.writePlain("%s", formatter.ExportReportMarkdown(report))
	}
	return r.writePlain("%s", formatter.ExportReportText(report))
}
