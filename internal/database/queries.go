// internal/database/queries.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error definitions
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Sentiment labels stored in articles.sentiment_label.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// timeFormat is how timestamps are written; matches CURRENT_TIMESTAMP.
const timeFormat = "2006-01-02 15:04:05"

// Article represents one ingested news item. URL is the identity key:
// re-ingesting the same URL replaces the row's content.
type Article struct {
	ID             int64
	Title          string
	Description    string
	Content        string
	URL            string
	Source         string
	PublishedAt    time.Time
	ImageURL       string
	SentimentScore float64
	SentimentLabel string
	Keywords       []string
	Category       string
	Bookmarked     bool
	CreatedAt      time.Time
}

// SearchRecord is one entry of the append-only search history.
type SearchRecord struct {
	ID        int64
	Query     string
	Category  string
	Timestamp time.Time
}

// BookmarkState is the outcome of a bookmark toggle.
type BookmarkState int

const (
	BookmarkOff BookmarkState = iota
	BookmarkOn
	BookmarkAdded
)

func (s BookmarkState) String() string {
	switch s {
	case BookmarkOn:
		return "bookmarked"
	case BookmarkAdded:
		return "added"
	default:
		return "removed"
	}
}

// Bookmarked reports whether the state leaves the row flagged.
func (s BookmarkState) Bookmarked() bool {
	return s == BookmarkOn || s == BookmarkAdded
}

const articleColumns = `id, title, COALESCE(description, ''), COALESCE(content, ''), url,
	COALESCE(source, ''), published_at, COALESCE(image_url, ''),
	sentiment_score, sentiment_label, COALESCE(keywords, ''), COALESCE(category, ''),
	bookmarked, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(s rowScanner) (Article, error) {
	var (
		a         Article
		published sql.NullTime
		keywords  string
	)
	err := s.Scan(
		&a.ID, &a.Title, &a.Description, &a.Content, &a.URL,
		&a.Source, &published, &a.ImageURL,
		&a.SentimentScore, &a.SentimentLabel, &keywords, &a.Category,
		&a.Bookmarked, &a.CreatedAt,
	)
	if err != nil {
		return Article{}, err
	}
	if published.Valid {
		a.PublishedAt = published.Time
	}
	a.Keywords = splitKeywords(keywords)
	return a, nil
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ",")
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// SaveArticles upserts a batch keyed by url. Existing rows have their content
// replaced; the bookmarked flag is never part of the conflict update, so a
// re-ingested URL keeps its bookmark. Failing rows are skipped, not fatal.
// Returns the number of rows written.
func (db *DB) SaveArticles(ctx context.Context, articles []Article, category string) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}
	if category == "" {
		category = "general"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (title, description, content, url, source, published_at,
			image_url, sentiment_score, sentiment_label, keywords, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			content = excluded.content,
			source = excluded.source,
			published_at = excluded.published_at,
			image_url = excluded.image_url,
			sentiment_score = excluded.sentiment_score,
			sentiment_label = excluded.sentiment_label,
			keywords = excluded.keywords,
			category = excluded.category`,
	)
	if err != nil {
		return 0, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	saved := 0
	for _, a := range articles {
		if a.URL == "" || a.Title == "" {
			continue
		}
		label := a.SentimentLabel
		if label == "" {
			label = SentimentNeutral
		}
		_, err := stmt.ExecContext(ctx,
			a.Title, a.Description, a.Content, a.URL, a.Source,
			a.PublishedAt.UTC().Format(timeFormat), a.ImageURL,
			a.SentimentScore, label, joinKeywords(a.Keywords), category,
		)
		if err != nil {
			// Skip the row, keep the batch going.
			continue
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing articles: %w", err)
	}
	return saved, nil
}

// ImportArticles upserts rows read back from an export file. Unlike
// SaveArticles each row keeps its own category, and a row marked bookmarked
// sets the flag; a row not marked never clears one already set.
func (db *DB) ImportArticles(ctx context.Context, articles []Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (title, description, content, url, source, published_at,
			image_url, sentiment_score, sentiment_label, keywords, category, bookmarked)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			content = excluded.content,
			source = excluded.source,
			published_at = excluded.published_at,
			image_url = excluded.image_url,
			sentiment_score = excluded.sentiment_score,
			sentiment_label = excluded.sentiment_label,
			keywords = excluded.keywords,
			category = excluded.category,
			bookmarked = MAX(articles.bookmarked, excluded.bookmarked)`,
	)
	if err != nil {
		return 0, fmt.Errorf("preparing import: %w", err)
	}
	defer stmt.Close()

	imported := 0
	for _, a := range articles {
		if a.URL == "" || a.Title == "" {
			continue
		}
		label := a.SentimentLabel
		if label == "" {
			label = SentimentNeutral
		}
		category := a.Category
		if category == "" {
			category = "general"
		}
		_, err := stmt.ExecContext(ctx,
			a.Title, a.Description, a.Content, a.URL, a.Source,
			a.PublishedAt.UTC().Format(timeFormat), a.ImageURL,
			a.SentimentScore, label, joinKeywords(a.Keywords), category, a.Bookmarked,
		)
		if err != nil {
			continue
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return imported, nil
}

// GetArticle retrieves a single article by url.
func (db *DB) GetArticle(ctx context.Context, url string) (Article, error) {
	if url == "" {
		return Article{}, ErrInvalidInput
	}
	row := db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE url = ?`, url,
	)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Article{}, ErrNotFound
	}
	return a, err
}

// ToggleBookmark flips the bookmark flag for the article's url. If the url is
// not stored yet the article is inserted with the flag set, and the returned
// state is BookmarkAdded.
func (db *DB) ToggleBookmark(ctx context.Context, a Article) (BookmarkState, error) {
	if a.URL == "" {
		return BookmarkOff, ErrInvalidInput
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return BookmarkOff, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var current bool
	err = tx.QueryRowContext(ctx,
		"SELECT bookmarked FROM articles WHERE url = ?", a.URL,
	).Scan(&current)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		if a.Title == "" {
			return BookmarkOff, ErrInvalidInput
		}
		label := a.SentimentLabel
		if label == "" {
			label = SentimentNeutral
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO articles (title, description, content, url, source, published_at,
				image_url, sentiment_score, sentiment_label, keywords, category, bookmarked)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
			a.Title, a.Description, a.Content, a.URL, a.Source,
			a.PublishedAt.UTC().Format(timeFormat), a.ImageURL,
			a.SentimentScore, label, joinKeywords(a.Keywords), a.Category,
		)
		if err != nil {
			return BookmarkOff, fmt.Errorf("inserting bookmark: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return BookmarkOff, fmt.Errorf("committing bookmark: %w", err)
		}
		return BookmarkAdded, nil

	case err != nil:
		return BookmarkOff, fmt.Errorf("reading bookmark state: %w", err)
	}

	next := !current
	if _, err := tx.ExecContext(ctx,
		"UPDATE articles SET bookmarked = ? WHERE url = ?", next, a.URL,
	); err != nil {
		return BookmarkOff, fmt.Errorf("updating bookmark: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return BookmarkOff, fmt.Errorf("committing bookmark: %w", err)
	}

	if next {
		return BookmarkOn, nil
	}
	return BookmarkOff, nil
}

// ClearBookmarks unsets every bookmark. Returns the number of affected rows.
func (db *DB) ClearBookmarks(ctx context.Context) (int64, error) {
	result, err := db.ExecContext(ctx,
		"UPDATE articles SET bookmarked = 0 WHERE bookmarked = 1",
	)
	if err != nil {
		return 0, fmt.Errorf("clearing bookmarks: %w", err)
	}
	return result.RowsAffected()
}

// Bookmarked returns all bookmarked articles, newest insertion first.
func (db *DB) Bookmarked(ctx context.Context) ([]Article, error) {
	return db.queryArticles(ctx,
		`SELECT `+articleColumns+` FROM articles
		WHERE bookmarked = 1
		ORDER BY created_at DESC, id DESC`,
	)
}

// RecordSearch appends one entry to the search history.
func (db *DB) RecordSearch(ctx context.Context, query, category string) error {
	if strings.TrimSpace(query) == "" {
		return ErrInvalidInput
	}
	_, err := db.ExecContext(ctx,
		"INSERT INTO searches (query, category) VALUES (?, ?)",
		query, category,
	)
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// RecentSearches returns distinct past queries, most recent first. A repeated
// query counts once, at the position of its latest occurrence.
func (db *DB) RecentSearches(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := db.QueryContext(ctx,
		`SELECT query FROM searches
		GROUP BY query
		ORDER BY MAX(timestamp) DESC, MAX(id) DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

// RecentArticles returns rows created within the trailing window, for the
// analytics report. Aggregation happens in the analytics package, not here.
func (db *DB) RecentArticles(ctx context.Context, days int) ([]Article, error) {
	if days <= 0 {
		days = 30
	}
	return db.queryArticles(ctx,
		`SELECT `+articleColumns+` FROM articles
		WHERE created_at >= datetime('now', ?)
		ORDER BY created_at DESC, id DESC`,
		fmt.Sprintf("-%d days", days),
	)
}

// AllArticles returns the full table ordered by publish time descending,
// the order the export writes.
func (db *DB) AllArticles(ctx context.Context) ([]Article, error) {
	return db.queryArticles(ctx,
		`SELECT `+articleColumns+` FROM articles
		ORDER BY published_at DESC, id DESC`,
	)
}

func (db *DB) queryArticles(ctx context.Context, query string, args ...any) ([]Article, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
