package tui

import "github.com/charmbracelet/lipgloss"

// categoryBar is the single-select tab row over the feed. Exactly one
// category is active at a time; "all" sits at index zero.
type categoryBar struct {
	categories []string
	selected   int
}

func newCategoryBar(categories []string) categoryBar {
	return categoryBar{categories: categories}
}

func (c *categoryBar) next() {
	if c.selected < len(c.categories)-1 {
		c.selected++
	} else {
		c.selected = 0
	}
}

func (c *categoryBar) prev() {
	if c.selected > 0 {
		c.selected--
	} else {
		c.selected = len(c.categories) - 1
	}
}

func (c *categoryBar) current() string {
	if len(c.categories) == 0 {
		return ""
	}
	return c.categories[c.selected]
}

func (c *categoryBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")

	var row string
	for i, name := range c.categories {
		style := tabInactiveStyle
		if i == c.selected {
			style = tabActiveStyle
		}
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += style.Render(name)
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().Width(width).PaddingLeft(1)
	return barStyle.Render(row)
}
