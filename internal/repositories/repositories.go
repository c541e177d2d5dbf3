// package repositories provides persistence layer implementations for all model types.
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mags/internal/models"
	"github.com/desertthunder/mags/internal/shared"
	"github.com/mattn/go-sqlite3"
)

// Options configures a [Repositories] value.
type Options struct {
	// ContributorThreshold is the minimum article count for [MagazineRepository.ContributingAuthors].
	// Zero means [shared.DefaultContributorThreshold].
	ContributorThreshold int
	Logger               *log.Logger
}

// Repositories bundles the entity repositories built over one database handle.
type Repositories struct {
	Authors   *AuthorRepository
	Magazines *MagazineRepository
	Articles  *ArticleRepository

	reg *registry
}

// CacheStats reports how many live instances each identity cache holds.
type CacheStats struct {
	Authors   int
	Magazines int
	Articles  int
}

// registry is the state shared by the three repositories.
type registry struct {
	db        *sql.DB
	threshold int
	logger    *log.Logger

	authors   table[*models.Author]
	magazines table[*models.Magazine]
	articles  table[*models.Article]
}

// New creates the repositories for db, which must already have the schema applied.
func New(db *sql.DB, opts Options) *Repositories {
	if opts.ContributorThreshold <= 0 {
		opts.ContributorThreshold = shared.DefaultContributorThreshold
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	reg := &registry{
		db:        db,
		threshold: opts.ContributorThreshold,
		logger:    opts.Logger,
		authors: table[*models.Author]{
			name:    "authors",
			entity:  "author",
			columns: "id, name",
			cache:   newIdentityMap[*models.Author](),
			build:   models.AuthorFromRecord,
		},
		magazines: table[*models.Magazine]{
			name:    "magazines",
			entity:  "magazine",
			columns: "id, name, category",
			cache:   newIdentityMap[*models.Magazine](),
			build:   models.MagazineFromRecord,
		},
		articles: table[*models.Article]{
			name:    "articles",
			entity:  "article",
			columns: "id, title, content, author_id, magazine_id",
			cache:   newIdentityMap[*models.Article](),
			build:   models.ArticleFromRecord,
		},
	}

	return &Repositories{
		Authors:   &AuthorRepository{reg: reg},
		Magazines: &MagazineRepository{reg: reg},
		Articles:  &ArticleRepository{reg: reg},
		reg:       reg,
	}
}

// ContributorThreshold returns the article count in effect for contributing authors.
func (r *Repositories) ContributorThreshold() int {
	return r.reg.threshold
}

// Truncate deletes every article, author and magazine and empties the identity caches.
//
// Cached instances have their IDs cleared, since SQLite reuses row IDs once a table is empty.
func (r *Repositories) Truncate() error {
	for _, name := range []string{"articles", "authors", "magazines"} {
		if _, err := r.reg.db.Exec("DELETE FROM " + name); err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}

	r.reg.authors.cache.forget()
	r.reg.magazines.cache.forget()
	r.reg.articles.cache.forget()
	r.reg.logger.Debug("cleared all tables")
	return nil
}

// Cached reports the identity cache sizes.
func (r *Repositories) Cached() CacheStats {
	return CacheStats{
		Authors:   r.reg.authors.cache.len(),
		Magazines: r.reg.magazines.cache.len(),
		Articles:  r.reg.articles.cache.len(),
	}
}

// queryRecords runs query and returns each row keyed by column name.
func (r *registry) queryRecords(query string, args ...any) ([]models.Record, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var records []models.Record
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		rec := make(models.Record, len(columns))
		for i, col := range columns {
			rec[col] = values[i]
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// queryStrings runs a single-column query and returns its values.
func (r *registry) queryStrings(query string, args ...any) ([]string, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan value: %w", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return values, nil
}

// exists reports whether table has a row with id.
func (r *registry) exists(table string, id int64) (bool, error) {
	var found bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = ?)", id).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("failed to check %s %d: %w", table, id, err)
	}
	return found, nil
}

// isConstraint reports whether err is a SQLite constraint violation.
func isConstraint(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.Code == sqlite3.ErrConstraint
}

// requirePersisted rejects relationship queries on entities that have no row yet.
func requirePersisted(m models.Model, entity string) error {
	if !m.Persisted() {
		return fmt.Errorf("%w: %s has not been saved", shared.ErrIllegalOperation, entity)
	}
	return nil
}
