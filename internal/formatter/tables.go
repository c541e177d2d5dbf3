package formatter

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/mags/internal/models"
	"github.com/jinzhu/inflection"
)

var cell = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.border).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.header
			}
			return cell
		})
}

// Count formats n with a singular or plural noun, e.g. "1 author" or "5 authors".
func Count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, inflection.Singular(noun))
	}
	return fmt.Sprintf("%d %s", n, inflection.Plural(noun))
}

// AuthorsTable renders authors as an ID/Name table followed by a count line.
func AuthorsTable(authors []*models.Author) string {
	t := newTable("ID", "Name")
	for _, a := range authors {
		t.Row(strconv.FormatInt(a.ID(), 10), a.Name())
	}
	return t.Render() + "\n" + Muted(Count(len(authors), "author"))
}

// MagazinesTable renders magazines as an ID/Name/Category table followed by a count line.
func MagazinesTable(magazines []*models.Magazine) string {
	t := newTable("ID", "Name", "Category")
	for _, m := range magazines {
		t.Row(strconv.FormatInt(m.ID(), 10), m.Name(), m.Category())
	}
	return t.Render() + "\n" + Muted(Count(len(magazines), "magazine"))
}

// ArticlesTable renders articles with their author and magazine ids followed by a count line.
func ArticlesTable(articles []*models.Article) string {
	t := newTable("ID", "Title", "Author", "Magazine")
	for _, a := range articles {
		t.Row(
			strconv.FormatInt(a.ID(), 10),
			a.Title(),
			strconv.FormatInt(a.AuthorID(), 10),
			strconv.FormatInt(a.MagazineID(), 10),
		)
	}
	return t.Render() + "\n" + Muted(Count(len(articles), "article"))
}

// ListTable renders a single-column table of values, such as table names or categories.
func ListTable(header, noun string, values []string) string {
	t := newTable(header)
	for _, v := range values {
		t.Row(v)
	}
	return t.Render() + "\n" + Muted(Count(len(values), noun))
}
