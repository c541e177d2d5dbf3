package repositories

import (
	"fmt"

	"github.com/desertthunder/mags/internal/models"
)

var _ models.Repository[*models.Author] = (*AuthorRepository)(nil)

// AuthorRepository implements [models.Repository] for [models.Author] persistence.
type AuthorRepository struct {
	reg *registry
}

// Create builds a new author and saves it.
func (r *AuthorRepository) Create(name string) (*models.Author, error) {
	author, err := models.NewAuthor(name)
	if err != nil {
		return nil, err
	}
	if err := r.Save(author); err != nil {
		return nil, err
	}
	return author, nil
}

// Save inserts an unpersisted author and binds its generated ID, or updates the row of a persisted one.
func (r *AuthorRepository) Save(author *models.Author) error {
	if err := author.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if !author.Persisted() {
		result, err := r.reg.db.Exec("INSERT INTO authors (name) VALUES (?)", author.Name())
		if err != nil {
			return fmt.Errorf("failed to insert author: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read author id: %w", err)
		}
		return r.reg.authors.inserted(r.reg, author, id)
	}

	result, err := r.reg.db.Exec("UPDATE authors SET name = ? WHERE id = ?", author.Name(), author.ID())
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	return r.reg.authors.updated(r.reg, author, rows)
}

// Delete removes the author's row. Authors with articles cannot be deleted.
func (r *AuthorRepository) Delete(author *models.Author) error {
	return r.reg.authors.delete(r.reg, author)
}

// FindByID returns the author with id, or an error wrapping [shared.ErrNotFound].
func (r *AuthorRepository) FindByID(id int64) (*models.Author, error) {
	return r.reg.authors.findByID(r.reg, id)
}

// FindByName matches name ignoring case.
// A cached match is returned first; otherwise the lowest-ID stored match.
func (r *AuthorRepository) FindByName(name string) (*models.Author, error) {
	return r.reg.authors.findByName(r.reg, "name", name, (*models.Author).Name)
}

// All returns every author in ID order.
func (r *AuthorRepository) All() ([]*models.Author, error) {
	return r.reg.authors.all(r.reg)
}

// Articles returns every article written by author.
func (r *AuthorRepository) Articles(author *models.Author) ([]*models.Article, error) {
	if err := requirePersisted(author, "author"); err != nil {
		return nil, err
	}
	t := r.reg.articles
	query := fmt.Sprintf("SELECT %s FROM articles WHERE author_id = ? ORDER BY id", t.columns)
	return t.findMany(r.reg, query, author.ID())
}

// Magazines returns the distinct magazines author has written for.
func (r *AuthorRepository) Magazines(author *models.Author) ([]*models.Magazine, error) {
	if err := requirePersisted(author, "author"); err != nil {
		return nil, err
	}
	t := r.reg.magazines
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM magazines m
		JOIN articles a ON m.id = a.magazine_id
		WHERE a.author_id = ?
		ORDER BY m.id
	`, t.selectFrom("m"))
	return t.findMany(r.reg, query, author.ID())
}

// TopicAreas returns the distinct categories of the magazines author has written for, sorted.
func (r *AuthorRepository) TopicAreas(author *models.Author) ([]string, error) {
	if err := requirePersisted(author, "author"); err != nil {
		return nil, err
	}
	topics, err := r.reg.queryStrings(`
		SELECT DISTINCT m.category
		FROM magazines m
		JOIN articles a ON m.id = a.magazine_id
		WHERE a.author_id = ?
		ORDER BY m.category
	`, author.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to query topic areas: %w", err)
	}
	if topics == nil {
		topics = []string{}
	}
	return topics, nil
}
