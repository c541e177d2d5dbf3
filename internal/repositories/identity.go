package repositories

import "github.com/desertthunder/mags/internal/models"

// identityMap maps row IDs to the single live instance representing that row.
type identityMap[T models.Model] struct {
	items map[int64]T
}

func newIdentityMap[T models.Model]() *identityMap[T] {
	return &identityMap[T]{items: make(map[int64]T)}
}

func (m *identityMap[T]) get(id int64) (T, bool) {
	v, ok := m.items[id]
	return v, ok
}

func (m *identityMap[T]) put(v T) {
	m.items[v.ID()] = v
}

func (m *identityMap[T]) evict(id int64) {
	delete(m.items, id)
}

// find returns the cached instance with the lowest ID satisfying match.
// Uncached rows are not considered.
func (m *identityMap[T]) find(match func(T) bool) (T, bool) {
	var (
		found T
		ok    bool
	)
	for id, v := range m.items {
		if !match(v) {
			continue
		}
		if !ok || id < found.ID() {
			found, ok = v, true
		}
	}
	return found, ok
}

func (m *identityMap[T]) len() int {
	return len(m.items)
}

func (m *identityMap[T]) clear() {
	clear(m.items)
}

// forget unbinds every cached instance from its row and empties the map.
func (m *identityMap[T]) forget() {
	for _, v := range m.items {
		v.ClearID()
	}
	m.clear()
}
