package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"newslens/internal/analytics"
	"newslens/internal/browser"
	"newslens/internal/database"
	"newslens/internal/export"
	"newslens/internal/pipeline"
)

const dbTimeout = 10 * time.Second

// loadArticlesCmd reads the stored feed back from the database, newest
// published first.
func (a *App) loadArticlesCmd() tea.Cmd {
	db := a.db
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		articles, err := db.AllArticles(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return articlesLoadedMsg{articles: articles}
	}
}

// loadBookmarksCmd reads the bookmarked subset, newest saved first.
func (a *App) loadBookmarksCmd() tea.Cmd {
	db := a.db
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		articles, err := db.Bookmarked(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return articlesLoadedMsg{articles: articles}
	}
}

// waitForEventCmd blocks on the dispatcher until the in-flight run
// finishes. Update re-arms it after every event.
func waitForEventCmd(d *pipeline.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-d.Events()
		if !ok {
			return nil
		}
		return fetchEventMsg{event: ev}
	}
}

func (a *App) toggleBookmarkCmd(article database.Article) tea.Cmd {
	db := a.db
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		state, err := db.ToggleBookmark(ctx, article)
		if err != nil {
			return errMsg{err: err}
		}
		return bookmarkToggledMsg{url: article.URL, state: state}
	}
}

func (a *App) clearBookmarksCmd() tea.Cmd {
	db := a.db
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		count, err := db.ClearBookmarks(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return bookmarksClearedMsg{count: count}
	}
}

// loadAnalyticsCmd aggregates the trailing window into a report.
func (a *App) loadAnalyticsCmd() tea.Cmd {
	db := a.db
	days := a.cfg.AnalyticsDays
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		articles, err := db.RecentArticles(ctx, days)
		if err != nil {
			return errMsg{err: err}
		}
		return analyticsMsg{report: analytics.Build(articles)}
	}
}

func (a *App) loadSearchesCmd() tea.Cmd {
	db := a.db
	limit := a.cfg.RecentSearches
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		queries, err := db.RecentSearches(ctx, limit)
		if err != nil {
			return errMsg{err: err}
		}
		return searchesLoadedMsg{queries: queries}
	}
}

// exportCmd writes the full article table to path.
func (a *App) exportCmd(path string) tea.Cmd {
	db := a.db
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()
		articles, err := db.AllArticles(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		if err := export.WriteFile(path, articles); err != nil {
			return errMsg{err: err}
		}
		return exportDoneMsg{path: path, count: len(articles)}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}
