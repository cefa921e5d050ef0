package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"newslens/internal/analytics"
	"newslens/internal/database"
)

const distributionBarWidth = 24

func renderAnalytics(report *analytics.Report, days, width, height int) string {
	if report == nil {
		return centerText("Crunching numbers...", width, height)
	}
	if report.Total == 0 {
		return centerText(fmt.Sprintf("No articles in the last %d days", days), width, height)
	}

	var b strings.Builder

	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Sentiment · last %d days", days)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %d articles, average score %+.3f\n\n", report.Total, report.AverageScore))

	rows := []struct {
		label string
		count int
	}{
		{database.SentimentPositive, report.Positive},
		{database.SentimentNeutral, report.Neutral},
		{database.SentimentNegative, report.Negative},
	}
	for _, row := range rows {
		pct := report.Percent(row.count)
		bar := distributionBar(pct)
		b.WriteString(fmt.Sprintf("  %-8s %s %3.0f%% (%d)\n",
			row.label, sentimentStyle(row.label).Render(bar), pct, row.count))
	}

	if len(report.TopSources) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionTitleStyle.Render("Top sources"))
		b.WriteString("\n\n")
		for i, s := range report.TopSources {
			b.WriteString(fmt.Sprintf("  %d. %s (%d)\n", i+1, s.Name, s.Count))
		}
	}

	if len(report.TopKeywords) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionTitleStyle.Render("Top keywords"))
		b.WriteString("\n\n")
		var tags []string
		for _, k := range report.TopKeywords {
			tags = append(tags, fmt.Sprintf("%s (%d)", k.Name, k.Count))
		}
		b.WriteString("  " + keywordStyle.Render(strings.Join(tags, "  ")) + "\n")
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(min(width-4, 72)).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// distributionBar scales a percentage onto a fixed-width block bar. Any
// non-zero share shows at least one block.
func distributionBar(pct float64) string {
	filled := int(pct / 100 * distributionBarWidth)
	if filled == 0 && pct > 0 {
		filled = 1
	}
	if filled > distributionBarWidth {
		filled = distributionBarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", distributionBarWidth-filled)
}
