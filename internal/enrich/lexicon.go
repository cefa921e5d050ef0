package enrich

import (
	"strings"
	"unicode"
)

// Polarity vocabulary tuned for news copy. Inflected forms are listed out
// rather than stemmed; headlines use a narrow range of verbs.
var positiveWords = []string{
	"advance", "advanced", "advances", "approval", "approved", "beat",
	"beats", "benefit", "benefits", "best", "boom", "boost", "boosted",
	"boosts", "breakthrough", "celebrate", "celebrated", "excellent",
	"gain", "gained", "gains", "good", "great", "grew", "grow", "growing",
	"grows", "growth", "happy", "hope", "hopeful", "improve", "improved",
	"improvement", "improves", "improving", "milestone", "optimism",
	"optimistic", "positive", "profit", "profitable", "profits",
	"progress", "promising", "rallied", "rallies", "rally", "rebound",
	"rebounded", "record", "recover", "recovered", "recovery", "rise",
	"rises", "rising", "rose", "soar", "soared", "soars", "strong",
	"stronger", "strongest", "succeed", "succeeded", "success",
	"successful", "surge", "surged", "surges", "thrive", "thriving",
	"triumph", "upbeat", "upgrade", "upgraded", "win", "winning", "wins",
	"won",
}

var negativeWords = []string{
	"attack", "attacked", "attacks", "bad", "bankrupt", "bankruptcy",
	"collapse", "collapsed", "concern", "concerned", "concerns",
	"conflict", "crash", "crashed", "crashes", "crisis", "damage",
	"damaged", "death", "deaths", "debt", "decline", "declined",
	"declines", "declining", "deficit", "died", "dies", "disaster",
	"downturn", "drop", "dropped", "drops", "fail", "failed", "fails",
	"failure", "fall", "falling", "falls", "fear", "feared", "fears",
	"fell", "fraud", "lawsuit", "layoff", "layoffs", "loss", "losses",
	"lost", "negative", "plunge", "plunged", "plunges", "problem",
	"problems", "recession", "risk", "risks", "risky", "scandal",
	"slowdown", "slump", "slumped", "struggle", "struggles",
	"struggling", "threat", "threatened", "threats", "trouble",
	"troubled", "tumble", "tumbled", "violence", "violent", "warn",
	"warned", "warning", "warns", "weak", "weaker", "weakest", "worse",
	"worst",
}

// Negators flip the polarity of the word immediately after them.
var negatorWords = []string{
	"no", "not", "never", "neither", "nor", "without", "hardly",
	"barely", "can't", "cannot", "couldn't", "didn't", "doesn't",
	"don't", "isn't", "shouldn't", "wasn't", "won't", "wouldn't",
}

// LexiconScorer scores text by averaging the polarity of every vocabulary
// word it contains. The result is the mean of the matches, so it always
// lands in [-1.0, 1.0]; text with no vocabulary match scores 0.
type LexiconScorer struct {
	positive map[string]struct{}
	negative map[string]struct{}
	negators map[string]struct{}
}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		positive: wordSet(positiveWords),
		negative: wordSet(negativeWords),
		negators: wordSet(negatorWords),
	}
}

func (s *LexiconScorer) Score(text string) float64 {
	words := tokenize(text)

	sum := 0.0
	matches := 0
	for i, w := range words {
		var value float64
		if _, ok := s.positive[w]; ok {
			value = 1
		} else if _, ok := s.negative[w]; ok {
			value = -1
		} else {
			continue
		}
		if i > 0 {
			if _, ok := s.negators[words[i-1]]; ok {
				value = -value
			}
		}
		sum += value
		matches++
	}

	if matches == 0 {
		return 0
	}
	return sum / float64(matches)
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// tokenize lowercases and splits on whitespace, trimming punctuation from
// word edges. Interior apostrophes survive so contractions match.
func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
