package models

import (
	"errors"
	"fmt"
)

// Magazine is a publication that articles appear in.
type Magazine struct {
	identity
	name     string
	category string
}

// NewMagazine returns an unpersisted magazine after validating name and category.
func NewMagazine(name, category string) (*Magazine, error) {
	m := &Magazine{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetCategory(category); err != nil {
		return nil, err
	}
	return m, nil
}

// MagazineFromRecord builds a magazine from a record with "name", "category" and an optional "id".
func MagazineFromRecord(r Record) (*Magazine, error) {
	name, err := r.stringField("name")
	if err != nil {
		return nil, err
	}
	category, err := r.stringField("category")
	if err != nil {
		return nil, err
	}
	m, err := NewMagazine(name, category)
	if err != nil {
		return nil, err
	}
	if err := bindRecordID(m, r); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Magazine) Name() string     { return m.name }
func (m *Magazine) Category() string { return m.category }

// SetName sets the magazine's name, which must be 2 to 16 characters.
func (m *Magazine) SetName(name string) error {
	if err := validateString("name", name, magazineNameRules); err != nil {
		return err
	}
	m.name = name
	return nil
}

// SetCategory sets the magazine's non-empty category.
func (m *Magazine) SetCategory(category string) error {
	if err := validateString("category", category, magazineCategoryRules); err != nil {
		return err
	}
	m.category = category
	return nil
}

func (m *Magazine) Validate() error {
	return errors.Join(
		validateString("name", m.name, magazineNameRules),
		validateString("category", m.category, magazineCategoryRules),
	)
}

func (m *Magazine) String() string {
	return fmt.Sprintf("<Magazine ID: %d, Name: %s, Category: %s>", m.id, m.name, m.category)
}
