package tui

import (
	"strings"
	"testing"
	"time"

	"newslens/internal/database"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-2 * 24 * time.Hour), "2d"},
	}
	for _, tt := range tests {
		got := relativeTime(tt.t)
		if got != tt.want {
			t.Errorf("relativeTime(%v ago) = %q, want %q", now.Sub(tt.t), got, tt.want)
		}
	}
}

func TestSentimentGlyph(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{database.SentimentPositive, "+"},
		{database.SentimentNegative, "-"},
		{database.SentimentNeutral, "·"},
		{"", "·"},
	}
	for _, tt := range tests {
		if got := sentimentGlyph(tt.label); got != tt.want {
			t.Errorf("sentimentGlyph(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapText() = %q, want %q", got, want)
	}
}

func TestDistributionBar(t *testing.T) {
	if got := distributionBar(0); got != "░░░░░░░░░░░░░░░░░░░░░░░░" {
		t.Errorf("Expected empty bar, got %q", got)
	}
	if got := distributionBar(100); got != "████████████████████████" {
		t.Errorf("Expected full bar, got %q", got)
	}
	// A tiny share still shows something.
	if got := distributionBar(1); !strings.HasPrefix(got, "█") {
		t.Errorf("Expected at least one filled cell, got %q", got)
	}
}

func TestCategoryBarCycle(t *testing.T) {
	bar := newCategoryBar([]string{"all", "business", "science"})

	if bar.current() != "all" {
		t.Errorf("Expected all first, got %q", bar.current())
	}
	bar.next()
	if bar.current() != "business" {
		t.Errorf("Expected business, got %q", bar.current())
	}
	bar.prev()
	bar.prev()
	if bar.current() != "science" {
		t.Errorf("Expected wrap-around to science, got %q", bar.current())
	}
	bar.next()
	if bar.current() != "all" {
		t.Errorf("Expected wrap-around to all, got %q", bar.current())
	}
}
