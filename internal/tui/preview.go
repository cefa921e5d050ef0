package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"newslens/internal/database"
)

func renderPreview(article *database.Article, width, height, scroll int) string {
	if article == nil {
		return centerText("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(article.Title)
	meta := previewMetaStyle.Render(
		fmt.Sprintf("%s · %s", article.Source, article.PublishedAt.Format("Jan 2, 2006 15:04")),
	)

	sentiment := sentimentStyle(article.SentimentLabel).Render(
		fmt.Sprintf("%s (%.2f)", article.SentimentLabel, article.SentimentScore),
	)
	if article.Bookmarked {
		sentiment += "  " + bookmarkMarkStyle.Render("★ bookmarked")
	}

	desc := article.Description
	if desc == "" {
		desc = "(No description available)"
	}
	body := previewBodyStyle.Width(contentWidth).Render(wrapText(desc, contentWidth))

	sections := []string{title, meta, sentiment, "", body}

	if len(article.Keywords) > 0 {
		sections = append(sections, "",
			keywordStyle.Render("# "+strings.Join(article.Keywords, "  # ")))
	}

	sections = append(sections,
		previewLinkStyle.Width(contentWidth).Render("Read more: "+article.URL))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
