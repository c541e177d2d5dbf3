package repositories

import (
	"fmt"

	"github.com/desertthunder/mags/internal/models"
)

var _ models.Repository[*models.Magazine] = (*MagazineRepository)(nil)

// MagazineRepository implements [models.Repository] for [models.Magazine] persistence.
type MagazineRepository struct {
	reg *registry
}

// Create builds a new magazine and saves it.
func (r *MagazineRepository) Create(name, category string) (*models.Magazine, error) {
	magazine, err := models.NewMagazine(name, category)
	if err != nil {
		return nil, err
	}
	if err := r.Save(magazine); err != nil {
		return nil, err
	}
	return magazine, nil
}

// Save inserts or updates the magazine.
func (r *MagazineRepository) Save(magazine *models.Magazine) error {
	if err := magazine.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if !magazine.Persisted() {
		result, err := r.reg.db.Exec(
			"INSERT INTO magazines (name, category) VALUES (?, ?)",
			magazine.Name(), magazine.Category(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert magazine: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read magazine id: %w", err)
		}
		return r.reg.magazines.inserted(r.reg, magazine, id)
	}

	result, err := r.reg.db.Exec(
		"UPDATE magazines SET name = ?, category = ? WHERE id = ?",
		magazine.Name(), magazine.Category(), magazine.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update magazine: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	return r.reg.magazines.updated(r.reg, magazine, rows)
}

// Delete removes the magazine's row. Magazines with articles cannot be deleted.
func (r *MagazineRepository) Delete(magazine *models.Magazine) error {
	return r.reg.magazines.delete(r.reg, magazine)
}

func (r *MagazineRepository) FindByID(id int64) (*models.Magazine, error) {
	return r.reg.magazines.findByID(r.reg, id)
}

// FindByName matches name ignoring case.
// A cached match is returned first; otherwise the lowest-ID stored match.
func (r *MagazineRepository) FindByName(name string) (*models.Magazine, error) {
	return r.reg.magazines.findByName(r.reg, "name", name, (*models.Magazine).Name)
}

func (r *MagazineRepository) All() ([]*models.Magazine, error) {
	return r.reg.magazines.all(r.reg)
}

// Articles returns every article published in magazine.
func (r *MagazineRepository) Articles(magazine *models.Magazine) ([]*models.Article, error) {
	if err := requirePersisted(magazine, "magazine"); err != nil {
		return nil, err
	}
	t := r.reg.articles
	query := fmt.Sprintf("SELECT %s FROM articles WHERE magazine_id = ? ORDER BY id", t.columns)
	return t.findMany(r.reg, query, magazine.ID())
}

// Authors returns the distinct authors who have written for magazine.
func (r *MagazineRepository) Authors(magazine *models.Magazine) ([]*models.Author, error) {
	if err := requirePersisted(magazine, "magazine"); err != nil {
		return nil, err
	}
	t := r.reg.authors
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM authors au
		JOIN articles a ON au.id = a.author_id
		WHERE a.magazine_id = ?
		ORDER BY au.id
	`, t.selectFrom("au"))
	return t.findMany(r.reg, query, magazine.ID())
}

// ArticleTitles returns the titles of magazine's articles, or nil when it has none.
func (r *MagazineRepository) ArticleTitles(magazine *models.Magazine) ([]string, error) {
	articles, err := r.Articles(magazine)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nil
	}

	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title())
	}
	return titles, nil
}

// ContributingAuthors returns the authors with at least the configured number of articles in magazine,
// or nil when there are none.
func (r *MagazineRepository) ContributingAuthors(magazine *models.Magazine) ([]*models.Author, error) {
	if err := requirePersisted(magazine, "magazine"); err != nil {
		return nil, err
	}
	t := r.reg.authors
	query := fmt.Sprintf(`
		SELECT %s
		FROM authors au
		JOIN articles a ON au.id = a.author_id
		WHERE a.magazine_id = ?
		GROUP BY au.id, au.name
		HAVING COUNT(a.id) >= ?
		ORDER BY au.id
	`, t.selectFrom("au"))

	authors, err := t.findMany(r.reg, query, magazine.ID(), r.reg.threshold)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, nil
	}
	return authors, nil
}
