package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/mags/internal/shared"
)

func TestAuthor(t *testing.T) {
	t.Run("NewAuthor", func(t *testing.T) {
		tc := []struct {
			name    string
			input   string
			wantErr error
		}{
			{name: "valid", input: "Jane Doe"},
			{name: "minimum length", input: "Al"},
			{name: "maximum length", input: strings.Repeat("a", 50)},
			{name: "multibyte counts characters", input: strings.Repeat("é", 50)},
			{name: "empty", input: "", wantErr: shared.ErrInvalidValue},
			{name: "too short", input: "A", wantErr: shared.ErrInvalidValue},
			{name: "too long", input: strings.Repeat("a", 51), wantErr: shared.ErrInvalidValue},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				author, err := NewAuthor(tt.input)
				if tt.wantErr != nil {
					if !errors.Is(err, tt.wantErr) {
						t.Fatalf("NewAuthor(%q) error = %v, want %v", tt.input, err, tt.wantErr)
					}
					return
				}
				if err != nil {
					t.Fatalf("NewAuthor(%q) unexpected error: %v", tt.input, err)
				}
				if author.Name() != tt.input {
					t.Errorf("Name() = %q, want %q", author.Name(), tt.input)
				}
				if author.Persisted() || author.ID() != 0 {
					t.Errorf("new author should not have an id, got %d", author.ID())
				}
			})
		}
	})

	t.Run("SetName keeps old value on failure", func(t *testing.T) {
		author, err := NewAuthor("Jane Doe")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := author.SetName("J"); !errors.Is(err, shared.ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue, got %v", err)
		}
		if author.Name() != "Jane Doe" {
			t.Errorf("name should be unchanged, got %q", author.Name())
		}
	})

	t.Run("AuthorFromRecord", func(t *testing.T) {
		author, err := AuthorFromRecord(Record{"id": int64(4), "name": "Mary Muthoni"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if author.ID() != 4 || author.Name() != "Mary Muthoni" {
			t.Errorf("unexpected author %v", author)
		}

		if _, err := AuthorFromRecord(Record{"name": 42}); !errors.Is(err, shared.ErrInvalidType) {
			t.Errorf("expected ErrInvalidType for numeric name, got %v", err)
		}
		if _, err := AuthorFromRecord(Record{"name": "Jane", "id": "1"}); !errors.Is(err, shared.ErrInvalidType) {
			t.Errorf("expected ErrInvalidType for string id, got %v", err)
		}
		if _, err := AuthorFromRecord(Record{}); !errors.Is(err, shared.ErrInvalidValue) {
			t.Errorf("expected ErrInvalidValue for missing name, got %v", err)
		}
	})
}

func TestMagazine(t *testing.T) {
	t.Run("NewMagazine", func(t *testing.T) {
		tc := []struct {
			name     string
			magName  string
			category string
			wantErr  error
		}{
			{name: "valid", magName: "Tech Today", category: "Technology"},
			{name: "sixteen characters", magName: strings.Repeat("m", 16), category: "Misc"},
			{name: "name too short", magName: "A", category: "Category", wantErr: shared.ErrInvalidValue},
			{name: "name too long", magName: strings.Repeat("m", 17), category: "Misc", wantErr: shared.ErrInvalidValue},
			{name: "empty category", magName: "Vogue", category: "", wantErr: shared.ErrInvalidValue},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				m, err := NewMagazine(tt.magName, tt.category)
				if tt.wantErr != nil {
					if !errors.Is(err, tt.wantErr) {
						t.Fatalf("NewMagazine error = %v, want %v", err, tt.wantErr)
					}
					return
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.Name() != tt.magName || m.Category() != tt.category {
					t.Errorf("got %s/%s, want %s/%s", m.Name(), m.Category(), tt.magName, tt.category)
				}
			})
		}
	})

	t.Run("MagazineFromRecord", func(t *testing.T) {
		if _, err := MagazineFromRecord(Record{"name": "Vogue", "category": true}); !errors.Is(err, shared.ErrInvalidType) {
			t.Errorf("expected ErrInvalidType, got %v", err)
		}

		if _, err := MagazineFromRecord(Record{"name": []byte("Vogue"), "category": "Fashion"}); !errors.Is(err, shared.ErrInvalidType) {
			t.Errorf("expected ErrInvalidType for blob name, got %v", err)
		}

		m, err := MagazineFromRecord(Record{"name": "Vogue", "category": "Fashion"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Name() != "Vogue" || m.Persisted() {
			t.Errorf("unexpected magazine %v", m)
		}
	})
}

func TestArticle(t *testing.T) {
	t.Run("NewArticle", func(t *testing.T) {
		tc := []struct {
			name       string
			title      string
			content    string
			authorID   int64
			magazineID int64
			wantErr    error
		}{
			{name: "valid", title: "Valid Title", content: "Body text", authorID: 1, magazineID: 1},
			{name: "title too short", title: "Shrt", content: "Body", authorID: 1, magazineID: 1, wantErr: shared.ErrInvalidValue},
			{name: "title too long", title: strings.Repeat("t", 51), content: "Body", authorID: 1, magazineID: 1, wantErr: shared.ErrInvalidValue},
			{name: "empty content", title: "Valid Title", content: "", authorID: 1, magazineID: 1, wantErr: shared.ErrInvalidValue},
			{name: "zero author", title: "Valid Title", content: "Body", authorID: 0, magazineID: 1, wantErr: shared.ErrInvalidValue},
			{name: "negative magazine", title: "Valid Title", content: "Body", authorID: 1, magazineID: -2, wantErr: shared.ErrInvalidValue},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				a, err := NewArticle(tt.title, tt.content, tt.authorID, tt.magazineID)
				if tt.wantErr != nil {
					if !errors.Is(err, tt.wantErr) {
						t.Fatalf("NewArticle error = %v, want %v", err, tt.wantErr)
					}
					return
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if a.Title() != tt.title || a.Content() != tt.content || a.AuthorID() != tt.authorID || a.MagazineID() != tt.magazineID {
					t.Errorf("fields did not round trip: %v", a)
				}
			})
		}
	})

	t.Run("ArticleFromRecord", func(t *testing.T) {
		rec := Record{"id": int64(9), "title": "Valid Title", "content": "Body", "author_id": int64(1), "magazine_id": 2}
		a, err := ArticleFromRecord(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.ID() != 9 || a.MagazineID() != 2 {
			t.Errorf("unexpected article %v", a)
		}

		rec["author_id"] = "1"
		if _, err := ArticleFromRecord(rec); !errors.Is(err, shared.ErrInvalidType) {
			t.Errorf("expected ErrInvalidType for string author_id, got %v", err)
		}

		delete(rec, "author_id")
		if _, err := ArticleFromRecord(rec); !errors.Is(err, shared.ErrInvalidValue) {
			t.Errorf("expected ErrInvalidValue for missing author_id, got %v", err)
		}
	})
}

func TestIdentity(t *testing.T) {
	author, err := NewAuthor("Jane Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := author.BindID(0); !errors.Is(err, shared.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue binding zero, got %v", err)
	}

	if err := author.BindID(1); err != nil {
		t.Fatalf("failed to bind id: %v", err)
	}
	if !author.Persisted() || author.ID() != 1 {
		t.Errorf("expected persisted author with id 1, got %d", author.ID())
	}

	if err := author.BindID(2); !errors.Is(err, shared.ErrIllegalOperation) {
		t.Errorf("expected ErrIllegalOperation on rebind, got %v", err)
	}

	author.ClearID()
	if author.Persisted() {
		t.Error("author should not be persisted after ClearID")
	}
}
