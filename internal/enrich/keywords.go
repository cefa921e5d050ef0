package enrich

import (
	"regexp"
	"sort"
	"strings"
)

// Keyword extraction keeps letters and whitespace only; digits and
// punctuation vanish before splitting.
var nonAlpha = regexp.MustCompile(`[^a-z\s]+`)

const (
	defaultMinLength = 3
	defaultLimit     = 5
)

// Extractor pulls the most frequent meaningful words out of a text. The
// stop-word set and thresholds are injected so callers can swap the list
// without touching this package.
type Extractor struct {
	stopWords map[string]struct{}
	minLength int
	limit     int
}

// NewExtractor builds an extractor. A nil stop-word set means no filtering;
// non-positive thresholds fall back to the defaults.
func NewExtractor(stopWords map[string]struct{}, minLength, limit int) *Extractor {
	if stopWords == nil {
		stopWords = map[string]struct{}{}
	}
	if minLength <= 0 {
		minLength = defaultMinLength
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Extractor{stopWords: stopWords, minLength: minLength, limit: limit}
}

// Extract returns up to the configured number of keywords ordered by
// descending frequency, ties resolved alphabetically.
func (e *Extractor) Extract(text string) []string {
	cleaned := nonAlpha.ReplaceAllString(strings.ToLower(text), "")

	counts := make(map[string]int)
	var words []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < e.minLength {
			continue
		}
		if _, stop := e.stopWords[tok]; stop {
			continue
		}
		if _, seen := counts[tok]; !seen {
			words = append(words, tok)
		}
		counts[tok]++
	}
	if len(words) == 0 {
		return nil
	}

	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > e.limit {
		words = words[:e.limit]
	}
	return words
}
