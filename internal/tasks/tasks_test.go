package tasks

import (
	"errors"
	"io"
	"testing"

	"github.com/desertthunder/mags/internal/repositories"
	"github.com/desertthunder/mags/internal/shared"
	tu "github.com/desertthunder/mags/internal/testing"
)

func setupSeeder(t *testing.T, fixture *Fixture, config shared.SeedConfig) (*Seeder, *repositories.Repositories) {
	t.Helper()
	logger := shared.NewLogger(io.Discard)
	repos := repositories.New(tu.OpenTestDB(t), repositories.Options{Logger: logger})
	return NewSeeder(repos, fixture, config, logger), repos
}

func loadDefaultFixture(t *testing.T) *Fixture {
	t.Helper()
	f, err := LoadFixture("")
	if err != nil {
		t.Fatalf("failed to load default fixture: %v", err)
	}
	return f
}

func TestParseFixture(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		f := loadDefaultFixture(t)
		if len(f.Authors) != 5 || len(f.Magazines) != 5 {
			t.Errorf("expected 5 authors and 5 magazines, got %d and %d", len(f.Authors), len(f.Magazines))
		}
		if len(f.Titles) == 0 || len(f.Contents) == 0 {
			t.Error("expected titles and contents")
		}
	})

	t.Run("MissingSections", func(t *testing.T) {
		cases := map[string]string{
			"authors":   "magazines = [{ name = \"Tech\", category = \"T\" }]\ntitles = [\"Hello\"]\ncontents = [\"x\"]",
			"magazines": "authors = [{ name = \"Jane\" }]\ntitles = [\"Hello\"]\ncontents = [\"x\"]",
			"titles":    "authors = [{ name = \"Jane\" }]\nmagazines = [{ name = \"Tech\", category = \"T\" }]\ncontents = [\"x\"]",
			"contents":  "authors = [{ name = \"Jane\" }]\nmagazines = [{ name = \"Tech\", category = \"T\" }]\ntitles = [\"Hello\"]",
		}
		for name, data := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := ParseFixture([]byte(data)); !errors.Is(err, shared.ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})

	t.Run("InvalidTOML", func(t *testing.T) {
		if _, err := ParseFixture([]byte("authors = [")); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadFixture(t.TempDir() + "/nope.toml"); err == nil {
			t.Error("expected read error")
		}
	})
}

func TestSeederRun(t *testing.T) {
	t.Run("CreatesFixtureRows", func(t *testing.T) {
		seeder, repos := setupSeeder(t, loadDefaultFixture(t), shared.SeedConfig{RandomSeed: 1, ExtraArticles: 10})

		result, err := seeder.Run(nil)
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if result.RunID == "" {
			t.Error("expected run id")
		}
		if result.Authors != 5 || result.Magazines != 5 {
			t.Errorf("expected 5 authors and 5 magazines, got %+v", result)
		}
		if result.RandomArticles != 10 || result.Failed != 0 {
			t.Errorf("expected 10 random articles and no failures, got %+v", result)
		}
		if result.Articles != 5*ArticlesPerContributor+10 {
			t.Errorf("expected %d articles, got %d", 5*ArticlesPerContributor+10, result.Articles)
		}

		articles, err := repos.Articles.All()
		if err != nil {
			t.Fatalf("failed to list articles: %v", err)
		}
		if len(articles) != result.Articles {
			t.Errorf("expected %d stored articles, got %d", result.Articles, len(articles))
		}
	})

	t.Run("EveryMagazineHasContributor", func(t *testing.T) {
		seeder, repos := setupSeeder(t, loadDefaultFixture(t), shared.SeedConfig{RandomSeed: 7})
		if _, err := seeder.Run(nil); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		magazines, err := repos.Magazines.All()
		if err != nil {
			t.Fatalf("failed to list magazines: %v", err)
		}
		for _, m := range magazines {
			contributors, err := repos.Magazines.ContributingAuthors(m)
			if err != nil {
				t.Fatalf("contributing authors for %s: %v", m.Name(), err)
			}
			if len(contributors) != 1 {
				t.Errorf("expected one contributor for %s, got %d", m.Name(), len(contributors))
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		titles := func() []string {
			seeder, repos := setupSeeder(t, loadDefaultFixture(t), shared.SeedConfig{RandomSeed: 42, ExtraArticles: 20})
			if _, err := seeder.Run(nil); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
			articles, err := repos.Articles.All()
			if err != nil {
				t.Fatalf("failed to list articles: %v", err)
			}
			out := make([]string, len(articles))
			for i, a := range articles {
				out[i] = a.String()
			}
			return out
		}

		first, second := titles(), titles()
		if len(first) != len(second) {
			t.Fatalf("expected equal runs, got %d and %d articles", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("article %d differs: %s vs %s", i, first[i], second[i])
			}
		}
	})

	t.Run("ReplacesExistingData", func(t *testing.T) {
		seeder, repos := setupSeeder(t, loadDefaultFixture(t), shared.SeedConfig{RandomSeed: 1})
		if _, err := repos.Authors.Create("Leftover Author"); err != nil {
			t.Fatalf("failed to create author: %v", err)
		}

		for range 2 {
			if _, err := seeder.Run(nil); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
		}

		authors, err := repos.Authors.All()
		if err != nil {
			t.Fatalf("failed to list authors: %v", err)
		}
		if len(authors) != 5 {
			t.Errorf("expected 5 authors after reseeding, got %d", len(authors))
		}
		if _, err := repos.Authors.FindByName("Leftover Author"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected leftover author to be gone, got %v", err)
		}
	})

	t.Run("ReportsProgress", func(t *testing.T) {
		seeder, _ := setupSeeder(t, loadDefaultFixture(t), shared.SeedConfig{RandomSeed: 1, ExtraArticles: 2})
		progress := make(chan ProgressUpdate, 64)

		if _, err := seeder.Run(progress); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		close(progress)

		seen := map[Phase]int{}
		for u := range progress {
			seen[u.Phase]++
		}
		want := map[Phase]int{
			ClearTables:          1,
			CreateAuthors:        5,
			CreateMagazines:      5,
			CreateArticles:       5 * ArticlesPerContributor,
			CreateRandomArticles: 2,
		}
		for phase, n := range want {
			if seen[phase] != n {
				t.Errorf("expected %d %s updates, got %d", n, phase, seen[phase])
			}
		}
	})

	t.Run("FullChannelDoesNotBlock", func(t *testing.T) {
		seeder, _ := setupSeeder(t, loadDefaultFixture(t), shared.SeedConfig{RandomSeed: 1})
		if _, err := seeder.Run(make(chan ProgressUpdate)); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	})

	t.Run("RejectsFixtureIDs", func(t *testing.T) {
		f, err := ParseFixture([]byte(`authors = [{ id = 3, name = "Jane Doe" }]
magazines = [{ name = "Tech Today", category = "Technology" }]
titles = ["Hello World"]
contents = ["Body"]`))
		if err != nil {
			t.Fatalf("failed to parse fixture: %v", err)
		}
		seeder, _ := setupSeeder(t, f, shared.SeedConfig{})
		if _, err := seeder.Run(nil); !errors.Is(err, shared.ErrInvalidValue) {
			t.Errorf("expected ErrInvalidValue, got %v", err)
		}
	})

	t.Run("RejectsWrongTypes", func(t *testing.T) {
		f, err := ParseFixture([]byte(`authors = [{ name = 42 }]
magazines = [{ name = "Tech Today", category = "Technology" }]
titles = ["Hello World"]
contents = ["Body"]`))
		if err != nil {
			t.Fatalf("failed to parse fixture: %v", err)
		}
		seeder, _ := setupSeeder(t, f, shared.SeedConfig{})
		if _, err := seeder.Run(nil); !errors.Is(err, shared.ErrInvalidType) {
			t.Errorf("expected ErrInvalidType, got %v", err)
		}
	})

	t.Run("RejectsInvalidValues", func(t *testing.T) {
		f, err := ParseFixture([]byte(`authors = [{ name = "J" }]
magazines = [{ name = "Tech Today", category = "Technology" }]
titles = ["Hello World"]
contents = ["Body"]`))
		if err != nil {
			t.Fatalf("failed to parse fixture: %v", err)
		}
		seeder, _ := setupSeeder(t, f, shared.SeedConfig{})
		if _, err := seeder.Run(nil); !errors.Is(err, shared.ErrInvalidValue) {
			t.Errorf("expected ErrInvalidValue, got %v", err)
		}
	})
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		ClearTables:          "clear_tables",
		CreateAuthors:        "create_authors",
		CreateMagazines:      "create_magazines",
		CreateArticles:       "create_articles",
		CreateRandomArticles: "create_random_articles",
		Phase(99):            "",
	}
	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
