package repositories

import (
	"fmt"
	"strings"

	"github.com/desertthunder/mags/internal/models"
	"github.com/desertthunder/mags/internal/shared"
)

// table describes how one entity type maps onto its SQL table and identity cache.
type table[T models.Model] struct {
	name    string
	entity  string
	columns string
	cache   *identityMap[T]
	build   func(models.Record) (T, error)
}

// selectFrom returns the column list qualified with alias for use in joins.
func (t *table[T]) selectFrom(alias string) string {
	cols := strings.Split(t.columns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// remember returns the cached instance for rec's ID, or builds and caches a new one.
func (t *table[T]) remember(rec models.Record) (T, error) {
	var zero T

	id, err := rec.ID()
	if err != nil {
		return zero, fmt.Errorf("failed to decode %s: %w", t.entity, err)
	}
	if cached, ok := t.cache.get(id); ok {
		return cached, nil
	}

	m, err := t.build(rec)
	if err != nil {
		return zero, fmt.Errorf("failed to decode %s %d: %w", t.entity, id, err)
	}
	t.cache.put(m)
	return m, nil
}

// rememberAll maps records through remember.
func (t *table[T]) rememberAll(records []models.Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		m, err := t.remember(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// findByID checks the identity cache before querying by primary key.
func (t *table[T]) findByID(r *registry, id int64) (T, error) {
	if cached, ok := t.cache.get(id); ok {
		return cached, nil
	}
	return t.findOne(r, fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", t.columns, t.name), id)
}

// findOne runs query and returns its first row, or [shared.ErrNotFound].
func (t *table[T]) findOne(r *registry, query string, args ...any) (T, error) {
	var zero T

	records, err := r.queryRecords(query, args...)
	if err != nil {
		return zero, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	if len(records) == 0 {
		return zero, fmt.Errorf("%s %w", t.entity, shared.ErrNotFound)
	}
	return t.remember(records[0])
}

// findMany runs query and returns every row.
func (t *table[T]) findMany(r *registry, query string, args ...any) ([]T, error) {
	records, err := r.queryRecords(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	return t.rememberAll(records)
}

// findByName checks the cache with a case-insensitive comparison, then the table.
func (t *table[T]) findByName(r *registry, column, value string, field func(T) string) (T, error) {
	if cached, ok := t.cache.find(func(m T) bool { return strings.EqualFold(field(m), value) }); ok {
		return cached, nil
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? COLLATE NOCASE ORDER BY id LIMIT 1", t.columns, t.name, column)
	return t.findOne(r, query, value)
}

// all returns every row of the table in ID order.
func (t *table[T]) all(r *registry) ([]T, error) {
	return t.findMany(r, fmt.Sprintf("SELECT %s FROM %s ORDER BY id", t.columns, t.name))
}

// inserted binds the generated ID to m and caches it.
func (t *table[T]) inserted(r *registry, m T, id int64) error {
	if err := m.BindID(id); err != nil {
		return err
	}
	t.cache.put(m)
	r.logger.Debug("inserted "+t.entity, "id", id)
	return nil
}

// updated caches m after a successful update, or reports a vanished row.
func (t *table[T]) updated(r *registry, m T, affected int64) error {
	if affected == 0 {
		t.cache.evict(m.ID())
		return fmt.Errorf("%s %d %w", t.entity, m.ID(), shared.ErrNotFound)
	}
	t.cache.put(m)
	r.logger.Debug("updated "+t.entity, "id", m.ID())
	return nil
}

// delete removes m's row, evicts it and clears its ID.
func (t *table[T]) delete(r *registry, m T) error {
	if !m.Persisted() {
		return fmt.Errorf("%w: cannot delete %s not yet saved to database", shared.ErrIllegalOperation, t.entity)
	}

	id := m.ID()
	result, err := r.db.Exec("DELETE FROM "+t.name+" WHERE id = ?", id)
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("%w: %s %d is still referenced by articles", shared.ErrIllegalOperation, t.entity, id)
		}
		return fmt.Errorf("failed to delete %s: %w", t.entity, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	t.cache.evict(id)
	m.ClearID()

	if rows == 0 {
		return fmt.Errorf("%w: %s %d does not exist", shared.ErrIllegalOperation, t.entity, id)
	}

	r.logger.Debug("deleted "+t.entity, "id", id)
	return nil
}
