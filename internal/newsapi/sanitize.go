package newsapi

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// cleanText strips markup from a snippet and collapses runs of whitespace.
// Source descriptions arrive with stray tags and entities often enough that
// storing them raw makes every downstream consumer deal with it.
func cleanText(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<&") {
		return collapseWhitespace(s)
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Keep the raw text rather than lose the snippet.
		return collapseWhitespace(s)
	}

	var buf strings.Builder
	collectText(doc, &buf)
	return collapseWhitespace(buf.String())
}

// collectText recursively gathers text nodes, skipping script and style
// bodies.
func collectText(n *html.Node, buf *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(n.Data)
		return
	case html.ElementNode:
		switch strings.ToLower(n.Data) {
		case "script", "style":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, buf)
	}
}

func collapseWhitespace(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		space = false
		buf.WriteRune(r)
	}
	return buf.String()
}
