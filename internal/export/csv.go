// Package export serializes the article table to a delimited file and reads
// it back. The column order is fixed so exports from different machines stay
// comparable; keywords are comma-joined inside their cell.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"newslens/internal/database"
)

// Header is the fixed column order of an export file.
var Header = []string{
	"title", "description", "url", "source", "published_at",
	"sentiment_score", "sentiment_label", "keywords", "category", "bookmarked",
}

// scorePrecision keeps scores comparable across a round trip without
// dragging the full float64 representation into the file.
const scorePrecision = 4

// Write serializes articles to w, header first.
func Write(w io.Writer, articles []database.Article) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, a := range articles {
		if err := writer.Write(record(a)); err != nil {
			return fmt.Errorf("writing row for %s: %w", a.URL, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile serializes articles to a file at path, replacing any previous
// content.
func WriteFile(path string, articles []database.Article) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := Write(f, articles); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read parses an export stream back into articles. The header row must
// match Header exactly; a malformed data row fails the whole read.
func Read(r io.Reader) ([]database.Article, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty export file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, name := range Header {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected header column %d: got %q, want %q", i, header[i], name)
		}
	}

	var articles []database.Article
	for row := 2; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row, err)
		}
		article, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// ReadFile parses an export file at path.
func ReadFile(path string) ([]database.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func record(a database.Article) []string {
	published := ""
	if !a.PublishedAt.IsZero() {
		published = a.PublishedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		a.Title,
		a.Description,
		a.URL,
		a.Source,
		published,
		strconv.FormatFloat(a.SentimentScore, 'f', scorePrecision, 64),
		a.SentimentLabel,
		strings.Join(a.Keywords, ","),
		a.Category,
		strconv.FormatBool(a.Bookmarked),
	}
}

func parseRecord(fields []string) (database.Article, error) {
	a := database.Article{
		Title:          fields[0],
		Description:    fields[1],
		URL:            fields[2],
		Source:         fields[3],
		SentimentLabel: fields[6],
		Category:       fields[8],
	}

	if fields[4] != "" {
		published, err := time.Parse(time.RFC3339, fields[4])
		if err != nil {
			return database.Article{}, fmt.Errorf("parsing published_at: %w", err)
		}
		a.PublishedAt = published
	}

	score, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return database.Article{}, fmt.Errorf("parsing sentiment_score: %w", err)
	}
	a.SentimentScore = score

	if fields[7] != "" {
		a.Keywords = strings.Split(fields[7], ",")
	}

	bookmarked, err := strconv.ParseBool(fields[9])
	if err != nil {
		return database.Article{}, fmt.Errorf("parsing bookmarked: %w", err)
	}
	a.Bookmarked = bookmarked

	return a, nil
}
