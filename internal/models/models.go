package models

import (
	"fmt"

	"github.com/desertthunder/mags/internal/shared"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Model defines the base interface for all persistent entities.
type Model interface {
	ID() int64          // ID returns the storage-assigned identifier, zero until persisted
	Persisted() bool    // Persisted reports whether an ID has been bound
	BindID(int64) error // BindID records the storage-assigned identifier
	ClearID()           // ClearID forgets the identifier after the row is removed
	Validate() error    // Validate checks every field
}

// Repository defines the data access operations shared by every entity.
type Repository[T Model] interface {
	Save(model T) error           // Save inserts an unpersisted model or updates a persisted one
	Delete(model T) error         // Delete removes the model's row and clears its ID
	FindByID(id int64) (T, error) // FindByID returns the cached or stored model with id
	All() ([]T, error)            // All returns every stored model
}

// Record is a row addressed by column name.
type Record map[string]any

// identity is embedded by every entity to manage its storage ID.
type identity struct {
	id int64
}

func (i *identity) ID() int64 { return i.id }

func (i *identity) Persisted() bool { return i.id != 0 }

func (i *identity) BindID(id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}
	if i.id != 0 {
		return fmt.Errorf("%w: id already bound to %d", shared.ErrIllegalOperation, i.id)
	}
	i.id = id
	return nil
}

func (i *identity) ClearID() { i.id = 0 }

// Field rules, counted in characters rather than bytes.
var (
	authorNameRules       = []validation.Rule{validation.Required, validation.RuneLength(2, 50)}
	magazineNameRules     = []validation.Rule{validation.Required, validation.RuneLength(2, 16)}
	magazineCategoryRules = []validation.Rule{validation.Required}
	articleTitleRules     = []validation.Rule{validation.Required, validation.RuneLength(5, 50)}
	articleContentRules   = []validation.Rule{validation.Required}
	idRules               = []validation.Rule{validation.Required, validation.Min(1)}
)

func validateString(field, value string, rules []validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return fmt.Errorf("%w: %s %v", shared.ErrInvalidValue, field, err)
	}
	return nil
}

func validateID(field string, value int64) error {
	if err := validation.Validate(value, idRules...); err != nil {
		return fmt.Errorf("%w: %s must be a positive integer, got %d", shared.ErrInvalidValue, field, value)
	}
	return nil
}

// stringField extracts a required string column.
func (r Record) stringField(name string) (string, error) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s is missing", shared.ErrInvalidValue, name)
	}
	switch s := v.(type) {
	case string:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s must be a string, got %T", shared.ErrInvalidType, name, v)
	}
}

// intField extracts an integer column; ok is false when the column is absent or NULL.
func (r Record) intField(name string) (int64, bool, error) {
	v, present := r[name]
	if !present || v == nil {
		return 0, false, nil
	}
	switch n := v.(type) {
	case int64:
		return n, true, nil
	case int:
		return int64(n), true, nil
	case int32:
		return int64(n), true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be an integer, got %T", shared.ErrInvalidType, name, v)
	}
}

func (r Record) requiredInt(name string) (int64, error) {
	n, ok, err := r.intField(name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s is missing", shared.ErrInvalidValue, name)
	}
	return n, nil
}

// bindRecordID binds the optional "id" column of r to m.
func bindRecordID(m Model, r Record) error {
	id, ok, err := r.intField("id")
	if err != nil || !ok {
		return err
	}
	return m.BindID(id)
}

// ID returns the record's "id" column, or zero when it has none.
func (r Record) ID() (int64, error) {
	id, _, err := r.intField("id")
	return id, err
}
