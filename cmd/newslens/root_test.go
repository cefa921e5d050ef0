package main

import (
	"testing"

	"newslens/internal/database"
)

func TestMaskKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abcd1234efgh5678", "abcd********5678"},
		{"0123456789", "0123**6789"},
		{"12345678", "********"},
		{"short", "*****"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := maskKey(tt.input); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSentimentMark(t *testing.T) {
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
		if got := sentimentMark(tt.label); got != tt.want {
			t.Errorf("sentimentMark(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
