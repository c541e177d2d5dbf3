package models

import (
	"errors"
	"fmt"
)

// Article is a piece of writing by one [Author] published in one [Magazine].
type Article struct {
	identity
	title      string
	content    string
	authorID   int64
	magazineID int64
}

// NewArticle returns an unpersisted article.
//
// Both references must be positive; whether they point at stored rows is checked when the article is saved.
func NewArticle(title, content string, authorID, magazineID int64) (*Article, error) {
	a := &Article{}
	for _, set := range []func() error{
		func() error { return a.SetTitle(title) },
		func() error { return a.SetContent(content) },
		func() error { return a.SetAuthorID(authorID) },
		func() error { return a.SetMagazineID(magazineID) },
	} {
		if err := set(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ArticleFromRecord builds an article from a record with "title", "content", "author_id", "magazine_id" and an optional "id".
func ArticleFromRecord(r Record) (*Article, error) {
	title, err := r.stringField("title")
	if err != nil {
		return nil, err
	}
	content, err := r.stringField("content")
	if err != nil {
		return nil, err
	}
	authorID, err := r.requiredInt("author_id")
	if err != nil {
		return nil, err
	}
	magazineID, err := r.requiredInt("magazine_id")
	if err != nil {
		return nil, err
	}
	a, err := NewArticle(title, content, authorID, magazineID)
	if err != nil {
		return nil, err
	}
	if err := bindRecordID(a, r); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Article) Title() string     { return a.title }
func (a *Article) Content() string   { return a.content }
func (a *Article) AuthorID() int64   { return a.authorID }
func (a *Article) MagazineID() int64 { return a.magazineID }

// SetTitle sets the title, which must be 5 to 50 characters.
func (a *Article) SetTitle(title string) error {
	if err := validateString("title", title, articleTitleRules); err != nil {
		return err
	}
	a.title = title
	return nil
}

func (a *Article) SetContent(content string) error {
	if err := validateString("content", content, articleContentRules); err != nil {
		return err
	}
	a.content = content
	return nil
}

func (a *Article) SetAuthorID(id int64) error {
	if err := validateID("author_id", id); err != nil {
		return err
	}
	a.authorID = id
	return nil
}

func (a *Article) SetMagazineID(id int64) error {
	if err := validateID("magazine_id", id); err != nil {
		return err
	}
	a.magazineID = id
	return nil
}

func (a *Article) Validate() error {
	return errors.Join(
		validateString("title", a.title, articleTitleRules),
		validateString("content", a.content, articleContentRules),
		validateID("author_id", a.authorID),
		validateID("magazine_id", a.magazineID),
	)
}

func (a *Article) String() string {
	return fmt.Sprintf("<Article ID: %d, Title: %s, Author: %d, Magazine: %d>", a.id, a.title, a.authorID, a.magazineID)
}
