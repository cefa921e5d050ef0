// Package analytics summarizes a window of stored articles: sentiment
// distribution, average polarity, and the most common sources and keywords.
// Aggregation happens here in memory; the store only delivers the rows.
package analytics

import (
	"sort"

	"newslens/internal/database"
)

const (
	sourceLimit  = 5
	keywordLimit = 10
)

// Count pairs a name with how often it appeared in the window.
type Count struct {
	Name  string
	Count int
}

// Report is the aggregate view of one analytics window.
type Report struct {
	Total        int
	AverageScore float64
	Positive     int
	Neutral      int
	Negative     int
	TopSources   []Count
	TopKeywords  []Count
}

// Percent expresses one of the label counts as a share of the window.
func (r Report) Percent(count int) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(count) * 100 / float64(r.Total)
}

// Build aggregates articles into a report. The top lists are ordered by
// count descending with ties resolved alphabetically, so identical input
// always produces an identical report.
func Build(articles []database.Article) Report {
	report := Report{Total: len(articles)}
	if report.Total == 0 {
		return report
	}

	sources := map[string]int{}
	keywords := map[string]int{}
	sum := 0.0

	for _, a := range articles {
		sum += a.SentimentScore
		switch a.SentimentLabel {
		case database.SentimentPositive:
			report.Positive++
		case database.SentimentNegative:
			report.Negative++
		default:
			report.Neutral++
		}
		if a.Source != "" {
			sources[a.Source]++
		}
		for _, kw := range a.Keywords {
			keywords[kw]++
		}
	}

	report.AverageScore = sum / float64(report.Total)
	report.TopSources = topCounts(sources, sourceLimit)
	report.TopKeywords = topCounts(keywords, keywordLimit)
	return report
}

func topCounts(counts map[string]int, limit int) []Count {
	if len(counts) == 0 {
		return nil
	}

	sorted := make([]Count, 0, len(counts))
	for name, count := range counts {
		sorted = append(sorted, Count{Name: name, Count: count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Name < sorted[j].Name
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
