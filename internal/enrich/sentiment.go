package enrich

// Scorer rates the polarity of a text on a [-1.0, 1.0] scale. Negative
// values read as critical, positive as favorable. Implementations must be
// safe for concurrent use.
type Scorer interface {
	Score(text string) float64
}

// NopScorer rates every text neutral. It stands in when no lexicon is
// configured so the pipeline stays total either way.
type NopScorer struct{}

func (NopScorer) Score(string) float64 { return 0 }
