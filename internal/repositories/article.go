package repositories

import (
	"fmt"

	"github.com/desertthunder/mags/internal/models"
	"github.com/desertthunder/mags/internal/shared"
)

var _ models.Repository[*models.Article] = (*ArticleRepository)(nil)

// ArticleRepository implements [models.Repository] for [models.Article] persistence.
type ArticleRepository struct {
	reg *registry
}

// Create builds a new article and saves it.
func (r *ArticleRepository) Create(title, content string, authorID, magazineID int64) (*models.Article, error) {
	article, err := models.NewArticle(title, content, authorID, magazineID)
	if err != nil {
		return nil, err
	}
	if err := r.Save(article); err != nil {
		return nil, err
	}
	return article, nil
}

// Save inserts or updates the article after checking that its author and magazine exist.
func (r *ArticleRepository) Save(article *models.Article) error {
	if err := article.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := r.checkReferences(article); err != nil {
		return err
	}

	if !article.Persisted() {
		result, err := r.reg.db.Exec(
			"INSERT INTO articles (title, content, author_id, magazine_id) VALUES (?, ?, ?, ?)",
			article.Title(), article.Content(), article.AuthorID(), article.MagazineID(),
		)
		if err != nil {
			if isConstraint(err) {
				return fmt.Errorf("%w: article references a missing author or magazine", shared.ErrInvalidValue)
			}
			return fmt.Errorf("failed to insert article: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read article id: %w", err)
		}
		return r.reg.articles.inserted(r.reg, article, id)
	}

	result, err := r.reg.db.Exec(
		"UPDATE articles SET title = ?, content = ?, author_id = ?, magazine_id = ? WHERE id = ?",
		article.Title(), article.Content(), article.AuthorID(), article.MagazineID(), article.ID(),
	)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("%w: article references a missing author or magazine", shared.ErrInvalidValue)
		}
		return fmt.Errorf("failed to update article: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	return r.reg.articles.updated(r.reg, article, rows)
}

func (r *ArticleRepository) checkReferences(article *models.Article) error {
	for _, ref := range []struct {
		table  string
		column string
		id     int64
	}{
		{"authors", "author_id", article.AuthorID()},
		{"magazines", "magazine_id", article.MagazineID()},
	} {
		ok, err := r.reg.exists(ref.table, ref.id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s %d does not reference an existing row in %s", shared.ErrInvalidValue, ref.column, ref.id, ref.table)
		}
	}
	return nil
}

// Delete removes the article's row, evicts it from the cache and clears its ID.
func (r *ArticleRepository) Delete(article *models.Article) error {
	return r.reg.articles.delete(r.reg, article)
}

func (r *ArticleRepository) FindByID(id int64) (*models.Article, error) {
	return r.reg.articles.findByID(r.reg, id)
}

// FindByTitle matches title ignoring case.
// A cached match is returned first; otherwise the lowest-ID stored match.
func (r *ArticleRepository) FindByTitle(title string) (*models.Article, error) {
	return r.reg.articles.findByName(r.reg, "title", title, (*models.Article).Title)
}

func (r *ArticleRepository) All() ([]*models.Article, error) {
	return r.reg.articles.all(r.reg)
}

// Author returns the article's author.
func (r *ArticleRepository) Author(article *models.Article) (*models.Author, error) {
	return r.reg.authors.findByID(r.reg, article.AuthorID())
}

// Magazine returns the magazine the article appears in.
func (r *ArticleRepository) Magazine(article *models.Article) (*models.Magazine, error) {
	return r.reg.magazines.findByID(r.reg, article.MagazineID())
}
