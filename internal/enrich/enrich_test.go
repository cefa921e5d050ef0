package enrich

import (
	"reflect"
	"testing"

	"newslens/internal/database"
)

type fixedScorer struct {
	value float64
}

func (f fixedScorer) Score(string) float64 { return f.value }

func TestEnrichPopulatesFields(t *testing.T) {
	enricher := NewEnricher(NewLexiconScorer(), NewExtractor(nil, 3, 5))

	article := enricher.Enrich(database.Article{
		Title:       "Markets rally on strong profits",
		Description: "Investors celebrate record gains.",
	})

	if article.SentimentScore <= positiveThreshold {
		t.Errorf("Expected a positive score, got %v", article.SentimentScore)
	}
	if article.SentimentLabel != database.SentimentPositive {
		t.Errorf("Expected label %q, got %q", database.SentimentPositive, article.SentimentLabel)
	}
	if len(article.Keywords) != 5 {
		t.Errorf("Expected 5 keywords, got %v", article.Keywords)
	}
}

func TestEnrichDeterministic(t *testing.T) {
	enricher := NewEnricher(NewLexiconScorer(), NewExtractor(nil, 3, 5))
	article := database.Article{
		Title:       "Storms damage coastal towns",
		Description: "Residents fear further losses as floods continue.",
	}

	first := enricher.Enrich(article)
	second := enricher.Enrich(article)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Enrich is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}

	// Running an already-enriched article through again changes nothing:
	// scoring reads only title and description.
	again := enricher.Enrich(first)
	if !reflect.DeepEqual(first, again) {
		t.Errorf("Enrich is not idempotent:\nonce:  %+v\ntwice: %+v", first, again)
	}
}

func TestEnrichEmptyText(t *testing.T) {
	enricher := NewEnricher(NewLexiconScorer(), nil)

	article := enricher.Enrich(database.Article{URL: "https://example.com/blank"})
	if article.SentimentScore != 0 {
		t.Errorf("Expected score 0, got %v", article.SentimentScore)
	}
	if article.SentimentLabel != database.SentimentNeutral {
		t.Errorf("Expected neutral label, got %q", article.SentimentLabel)
	}
	if article.Keywords != nil {
		t.Errorf("Expected no keywords, got %v", article.Keywords)
	}
}

func TestEnrichNilScorer(t *testing.T) {
	enricher := NewEnricher(nil, nil)

	article := enricher.Enrich(database.Article{Title: "Markets rally on strong profits"})
	if article.SentimentScore != 0 {
		t.Errorf("Expected neutral fallback score, got %v", article.SentimentScore)
	}
	if article.SentimentLabel != database.SentimentNeutral {
		t.Errorf("Expected neutral label, got %q", article.SentimentLabel)
	}
	if len(article.Keywords) == 0 {
		t.Error("Keywords should be extracted even without a scorer")
	}
}

func TestEnrichClampsScore(t *testing.T) {
	tests := []struct {
		name  string
		raw   float64
		want  float64
		label string
	}{
		{name: "above range", raw: 5, want: 1, label: database.SentimentPositive},
		{name: "below range", raw: -5, want: -1, label: database.SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enricher := NewEnricher(fixedScorer{value: tt.raw}, nil)
			article := enricher.Enrich(database.Article{Title: "anything"})
			if article.SentimentScore != tt.want {
				t.Errorf("Expected score %v, got %v", tt.want, article.SentimentScore)
			}
			if article.SentimentLabel != tt.label {
				t.Errorf("Expected label %q, got %q", tt.label, article.SentimentLabel)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.5, database.SentimentPositive},
		{0.11, database.SentimentPositive},
		{0.1, database.SentimentNeutral},
		{0, database.SentimentNeutral},
		{-0.1, database.SentimentNeutral},
		{-0.11, database.SentimentNegative},
		{-0.5, database.SentimentNegative},
	}

	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestEnrichAll(t *testing.T) {
	enricher := NewEnricher(NewLexiconScorer(), nil)

	articles := enricher.EnrichAll([]database.Article{
		{Title: "Team wins championship in record triumph"},
		{Title: "Factory closes amid bankruptcy fears"},
	})

	if articles[0].SentimentLabel != database.SentimentPositive {
		t.Errorf("Expected first article positive, got %q", articles[0].SentimentLabel)
	}
	if articles[1].SentimentLabel != database.SentimentNegative {
		t.Errorf("Expected second article negative, got %q", articles[1].SentimentLabel)
	}
}
