// package formatter renders authors, magazines and articles for the terminal and exports them as CSV, Markdown or
// plain text.
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/mags/internal/models"
)

// MagazineReport collects everything known about one magazine.
type MagazineReport struct {
	Magazine     *models.Magazine
	Titles       []string
	Authors      []*models.Author
	Contributors []*models.Author
	Threshold    int
}

// ExportArticlesCSV converts articles to CSV with columns: ID, Title, Content, Author ID, Magazine ID
func ExportArticlesCSV(articles []*models.Article) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Content", "Author ID", "Magazine ID"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, a := range articles {
		record := []string{
			strconv.FormatInt(a.ID(), 10),
			a.Title(),
			a.Content(),
			strconv.FormatInt(a.AuthorID(), 10),
			strconv.FormatInt(a.MagazineID(), 10),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteArticlesCSV writes the CSV export of articles to path.
func WriteArticlesCSV(articles []*models.Article, path string) error {
	data, err := ExportArticlesCSV(articles)
	if err != nil {
		return fmt.Errorf("failed to generate CSV: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}

// ExportReportMarkdown converts a MagazineReport to Markdown
func ExportReportMarkdown(r MagazineReport) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", r.Magazine.Name())
	fmt.Fprintf(&buf, "**Category**: %s\n", r.Magazine.Category())
	fmt.Fprintf(&buf, "**Articles**: %d\n\n", len(r.Titles))

	buf.WriteString("## Articles\n\n")
	for i, title := range r.Titles {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, title)
	}

	buf.WriteString("\n## Authors\n\n")
	for _, a := range r.Authors {
		fmt.Fprintf(&buf, "- %s\n", a.Name())
	}

	fmt.Fprintf(&buf, "\n## Contributing Authors (%d+ articles)\n\n", r.Threshold)
	if len(r.Contributors) == 0 {
		buf.WriteString("_None_\n")
	}
	for _, a := range r.Contributors {
		fmt.Fprintf(&buf, "- %s\n", a.Name())
	}

	return buf.Bytes()
}

// ExportReportText converts a MagazineReport to plain text
func ExportReportText(r MagazineReport) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Magazine: %s\n", r.Magazine.Name())
	fmt.Fprintf(&buf, "Category: %s\n", r.Magazine.Category())
	fmt.Fprintf(&buf, "Articles: %d\n\n", len(r.Titles))

	for i, title := range r.Titles {
		fmt.Fprintf(&buf, "%d. %s\n", i+1, title)
	}

	fmt.Fprintf(&buf, "\nAuthors: %s\n", joinNames(r.Authors))
	fmt.Fprintf(&buf, "Contributing authors: %s\n", joinNames(r.Contributors))

	return buf.Bytes()
}

func joinNames(authors []*models.Author) string {
	if len(authors) == 0 {
		return "none"
	}
	var buf bytes.Buffer
	for i, a := range authors {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(a.Name())
	}
	return buf.String()
}
