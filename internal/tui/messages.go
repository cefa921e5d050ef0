package tui

import (
	"newslens/internal/analytics"
	"newslens/internal/database"
	"newslens/internal/pipeline"
)

type articlesLoadedMsg struct {
	articles []database.Article
}

type fetchEventMsg struct {
	event pipeline.Event
}

type bookmarkToggledMsg struct {
	url   string
	state database.BookmarkState
}

type bookmarksClearedMsg struct {
	count int64
}

type analyticsMsg struct {
	report analytics.Report
}

type searchesLoadedMsg struct {
	queries []string
}

type exportDoneMsg struct {
	path  string
	count int
}

type errMsg struct {
	err error
}
