package models

import "fmt"

// Author is a writer of articles.
type Author struct {
	identity
	name string
}

// NewAuthor returns an unpersisted author after validating name.
func NewAuthor(name string) (*Author, error) {
	a := &Author{}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

// AuthorFromRecord builds an author from a column-name keyed record with "name" and an optional "id".
func AuthorFromRecord(r Record) (*Author, error) {
	name, err := r.stringField("name")
	if err != nil {
		return nil, err
	}
	a, err := NewAuthor(name)
	if err != nil {
		return nil, err
	}
	if err := bindRecordID(a, r); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Author) Name() string { return a.name }

// SetName sets the author's name, which must be 2 to 50 characters.
func (a *Author) SetName(name string) error {
	if err := validateString("name", name, authorNameRules); err != nil {
		return err
	}
	a.name = name
	return nil
}

func (a *Author) Validate() error {
	return validateString("name", a.name, authorNameRules)
}

func (a *Author) String() string {
	return fmt.Sprintf("<Author ID: %d, Name: %s>", a.id, a.name)
}
