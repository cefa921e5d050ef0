package export

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"newslens/internal/database"
)

func exportFixture() []database.Article {
	return []database.Article{
		{
			Title:          "Markets rally on rate cut hopes",
			Description:    "Stocks climbed, led by banks.",
			URL:            "https://example.com/markets",
			Source:         "Reuters",
			PublishedAt:    time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
			SentimentScore: 0.123456,
			SentimentLabel: database.SentimentPositive,
			Keywords:       []string{"markets", "rally", "banks"},
			Category:       "business",
			Bookmarked:     true,
		},
		{
			Title:          "Quiet day in parliament",
			URL:            "https://example.com/parliament",
			Source:         "BBC News",
			PublishedAt:    time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
			SentimentScore: 0,
			SentimentLabel: database.SentimentNeutral,
			Category:       "general",
		},
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, exportFixture()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(got))
	}

	first := got[0]
	if first.URL != "https://example.com/markets" {
		t.Errorf("URL not preserved: %q", first.URL)
	}
	// Scores survive at the file's fixed precision.
	if first.SentimentScore != 0.1235 {
		t.Errorf("Expected score 0.1235, got %v", first.SentimentScore)
	}
	if !reflect.DeepEqual(first.Keywords, []string{"markets", "rally", "banks"}) {
		t.Errorf("Keywords not preserved: %v", first.Keywords)
	}
	if first.SentimentLabel != database.SentimentPositive {
		t.Errorf("Label not preserved: %q", first.SentimentLabel)
	}
	if !first.Bookmarked {
		t.Error("Bookmark flag not preserved")
	}
	if !first.PublishedAt.Equal(time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("Publish time not preserved: %v", first.PublishedAt)
	}

	second := got[1]
	if second.Keywords != nil {
		t.Errorf("Expected no keywords, got %v", second.Keywords)
	}
	if second.Bookmarked {
		t.Error("Expected second article unbookmarked")
	}
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")

	if err := WriteFile(path, exportFixture()); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 articles, got %d", len(got))
	}
}

func TestWriteEmptySlice(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	line := strings.TrimSpace(buf.String())
	if line != strings.Join(Header, ",") {
		t.Errorf("Expected header-only output, got %q", line)
	}

	got, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no articles, got %d", len(got))
	}
}

func TestReadRejectsBadHeader(t *testing.T) {
	in := "title,url\nsomething,https://example.com\n"
	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Fatal("Expected an error for a mismatched header")
	}
}

func TestReadRejectsMalformedRow(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, exportFixture()[:1]); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	broken := strings.Replace(buf.String(), "0.1235", "not-a-number", 1)

	_, err := Read(strings.NewReader(broken))
	if err == nil {
		t.Fatal("Expected an error for a malformed score")
	}
	if !strings.Contains(err.Error(), "sentiment_score") {
		t.Errorf("Error should name the bad column, got: %v", err)
	}
}

func TestReadEmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Fatal("Expected an error for empty input")
	}
}
