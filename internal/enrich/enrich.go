// Package enrich annotates fetched articles with a sentiment polarity and a
// bounded keyword list. Both annotations are pure functions of the article
// text: identical input yields identical output, and nothing here returns an
// error. When no scorer is configured everything degrades to neutral.
package enrich

import (
	"strings"

	"newslens/internal/database"
)

// Cut points between labels. Scores in [-0.1, 0.1] read as neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

type Enricher struct {
	scorer    Scorer
	extractor *Extractor
}

// NewEnricher wires a scorer and keyword extractor together. Either may be
// nil; the fallbacks are a neutral scorer and an extractor with defaults.
func NewEnricher(scorer Scorer, extractor *Extractor) *Enricher {
	if scorer == nil {
		scorer = NopScorer{}
	}
	if extractor == nil {
		extractor = NewExtractor(nil, 0, 0)
	}
	return &Enricher{scorer: scorer, extractor: extractor}
}

// Enrich returns a copy of article with sentiment and keyword fields filled
// in from its title and description.
func (e *Enricher) Enrich(article database.Article) database.Article {
	text := strings.TrimSpace(article.Title + " " + article.Description)

	score := e.scorer.Score(text)
	switch {
	case score > 1:
		score = 1
	case score < -1:
		score = -1
	}

	article.SentimentScore = score
	article.SentimentLabel = Label(score)
	article.Keywords = e.extractor.Extract(text)
	return article
}

// EnrichAll annotates every article in the slice and returns it.
func (e *Enricher) EnrichAll(articles []database.Article) []database.Article {
	for i := range articles {
		articles[i] = e.Enrich(articles[i])
	}
	return articles
}

// Label maps a polarity score to its stored label.
func Label(score float64) string {
	switch {
	case score > positiveThreshold:
		return database.SentimentPositive
	case score < negativeThreshold:
		return database.SentimentNegative
	default:
		return database.SentimentNeutral
	}
}
