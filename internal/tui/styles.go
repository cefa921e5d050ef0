package tui

import (
	"github.com/charmbracelet/lipgloss"

	"newslens/internal/database"
)

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#B3315F", Dark: "#E94560"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#EAEAEA"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#B8B8B8"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#0F3460"}
	colorActiveBdr = lipgloss.AdaptiveColor{Light: "#B3315F", Dark: "#E94560"}
	colorTabBg     = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#16213E"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#B8B8B8"}

	// Sentiment colors
	colorPositive = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#4ECCA3"}
	colorNegative = lipgloss.AdaptiveColor{Light: "#D94C4C", Dark: "#E94560"}
	colorNeutral  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#B8B8B8"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Align(lipgloss.Right)

	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	listPaneActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr)

	previewPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	previewPaneActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr)

	itemTitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	bookmarkMarkStyle = lipgloss.NewStyle().
				Foreground(colorPrimary)

	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSecondary).
				MarginBottom(1)

	previewMetaStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				MarginBottom(1)

	previewBodyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	previewLinkStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Italic(true).
				MarginTop(1)

	keywordStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorActiveBdr).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorTabBg).
				Padding(0, 1)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 3)
)

// sentimentStyle picks the display color for a sentiment label.
func sentimentStyle(label string) lipgloss.Style {
	switch label {
	case database.SentimentPositive:
		return lipgloss.NewStyle().Foreground(colorPositive)
	case database.SentimentNegative:
		return lipgloss.NewStyle().Foreground(colorNegative)
	default:
		return lipgloss.NewStyle().Foreground(colorNeutral)
	}
}
