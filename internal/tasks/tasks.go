package tasks

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mags/internal/models"
	"github.com/desertthunder/mags/internal/repositories"
	"github.com/desertthunder/mags/internal/shared"
)

// ArticlesPerContributor is how many articles each fixture author writes for its paired magazine.
const ArticlesPerContributor = 3

// SeedResult summarizes a seeding run.
type SeedResult struct {
	RunID          string // Identifier used in log lines for this run
	Authors        int    // Authors created
	Magazines      int    // Magazines created
	Articles       int    // Articles created, including random ones
	RandomArticles int    // Random articles created
	Failed         int    // Random articles that could not be saved
}

// Seeder writes fixture data through the repositories.
type Seeder struct {
	repos   *repositories.Repositories
	fixture *Fixture
	config  shared.SeedConfig
	logger  *log.Logger
}

// NewSeeder creates a seeder that writes fixture using repos.
func NewSeeder(repos *repositories.Repositories, fixture *Fixture, config shared.SeedConfig, logger *log.Logger) *Seeder {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Seeder{repos: repos, fixture: fixture, config: config, logger: logger}
}

// Run clears the database and writes the fixture, reporting progress on the optional channel.
func (s *Seeder) Run(progress chan<- ProgressUpdate) (*SeedResult, error) {
	result := &SeedResult{RunID: shared.GenerateID()}
	logger := shared.WithLogger(s.logger, "run", result.RunID)
	logger.Info("starting seed", "seed", s.config.RandomSeed, "extra_articles", s.config.ExtraArticles)

	sendProgress(progress, clearTablesUpdate())
	if err := s.repos.Truncate(); err != nil {
		return nil, fmt.Errorf("failed to clear tables: %w", err)
	}

	authors, err := s.createAuthors(progress)
	if err != nil {
		return nil, err
	}
	result.Authors = len(authors)

	magazines, err := s.createMagazines(progress)
	if err != nil {
		return nil, err
	}
	result.Magazines = len(magazines)

	pairs := min(len(authors), len(magazines))
	total := pairs * ArticlesPerContributor
	step := 0
	for i := range pairs {
		for j := range ArticlesPerContributor {
			title := s.fixture.Titles[(i*ArticlesPerContributor+j)%len(s.fixture.Titles)]
			content := s.fixture.Contents[(i+j)%len(s.fixture.Contents)]
			if _, err := s.repos.Articles.Create(title, content, authors[i].ID(), magazines[i].ID()); err != nil {
				return nil, fmt.Errorf("failed to create article %q: %w", title, err)
			}
			step++
			sendProgress(progress, createdUpdate(CreateArticles, step, total, "article"))
		}
	}
	result.Articles = total

	rng := rand.New(rand.NewPCG(uint64(s.config.RandomSeed), uint64(s.config.RandomSeed)))
	for i := range s.config.ExtraArticles {
		author := authors[rng.IntN(len(authors))]
		magazine := magazines[rng.IntN(len(magazines))]
		title := s.fixture.Titles[rng.IntN(len(s.fixture.Titles))]
		content := s.fixture.Contents[rng.IntN(len(s.fixture.Contents))]

		if _, err := s.repos.Articles.Create(title, content, author.ID(), magazine.ID()); err != nil {
			result.Failed++
			logger.Warn("skipping random article", "title", title, "error", err)
			continue
		}
		result.RandomArticles++
		sendProgress(progress, createdUpdate(CreateRandomArticles, i+1, s.config.ExtraArticles, "random article"))
	}
	result.Articles += result.RandomArticles

	logger.Info("seed complete",
		"authors", result.Authors, "magazines", result.Magazines,
		"articles", result.Articles, "failed", result.Failed)
	return result, nil
}

func (s *Seeder) createAuthors(progress chan<- ProgressUpdate) ([]*models.Author, error) {
	authors := make([]*models.Author, 0, len(s.fixture.Authors))
	for i, rec := range s.fixture.Authors {
		if err := fixtureRecord(rec, "author", i); err != nil {
			return nil, err
		}
		author, err := models.AuthorFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("author %d: %w", i+1, err)
		}
		if err := s.repos.Authors.Save(author); err != nil {
			return nil, fmt.Errorf("failed to save author %q: %w", author.Name(), err)
		}
		authors = append(authors, author)
		sendProgress(progress, createdUpdate(CreateAuthors, i+1, len(s.fixture.Authors), author.Name()))
	}
	return authors, nil
}

func (s *Seeder) createMagazines(progress chan<- ProgressUpdate) ([]*models.Magazine, error) {
	magazines := make([]*models.Magazine, 0, len(s.fixture.Magazines))
	for i, rec := range s.fixture.Magazines {
		if err := fixtureRecord(rec, "magazine", i); err != nil {
			return nil, err
		}
		magazine, err := models.MagazineFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("magazine %d: %w", i+1, err)
		}
		if err := s.repos.Magazines.Save(magazine); err != nil {
			return nil, fmt.Errorf("failed to save magazine %q: %w", magazine.Name(), err)
		}
		magazines = append(magazines, magazine)
		sendProgress(progress, createdUpdate(CreateMagazines, i+1, len(s.fixture.Magazines), magazine.Name()))
	}
	return magazines, nil
}
