// Package pipeline composes the fetch, enrich, and persist stages into one
// operation and runs it on a single background worker. The presenter talks
// to the dispatcher; the stages never talk to the presenter.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"newslens/internal/database"
	"newslens/internal/enrich"
	"newslens/internal/newsapi"
)

// Fetcher is the remote source the pipeline pulls from.
type Fetcher interface {
	Fetch(ctx context.Context, req newsapi.Request) ([]database.Article, error)
}

// Request describes one ingestion run. A non-empty Query selects search
// mode; otherwise headlines for Country and Category are fetched.
type Request struct {
	Query     string
	Category  string
	Country   string
	PageLimit int
}

// Result is what a completed run hands back to the presenter.
type Result struct {
	Query    string
	Category string
	Articles []database.Article
	Saved    int
	Elapsed  time.Duration
}

type Pipeline struct {
	fetcher  Fetcher
	enricher *enrich.Enricher
	db       *database.DB
	logger   *zap.Logger
}

func New(fetcher Fetcher, enricher *enrich.Enricher, db *database.DB, logger *zap.Logger) *Pipeline {
	if enricher == nil {
		enricher = enrich.NewEnricher(nil, nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		fetcher:  fetcher,
		enricher: enricher,
		db:       db,
		logger:   logger,
	}
}

// Run executes one ingestion end to end: query the remote source, annotate
// every article, persist the batch, and append the search log entry. The
// search log is best-effort; its failure never fails the run.
func (p *Pipeline) Run(ctx context.Context, apiKey string, req Request) (*Result, error) {
	start := time.Now()

	// "all" is a browse mode, not a real category.
	category := req.Category
	if category == "all" {
		category = ""
	}

	articles, err := p.fetcher.Fetch(ctx, newsapi.Request{
		APIKey:    apiKey,
		Query:     req.Query,
		Category:  category,
		Country:   req.Country,
		PageLimit: req.PageLimit,
	})
	if err != nil {
		return nil, err
	}

	articles = p.enricher.EnrichAll(articles)

	saved, err := p.db.SaveArticles(ctx, articles, category)
	if err != nil {
		return nil, fmt.Errorf("saving articles: %w", err)
	}

	if req.Query != "" {
		if err := p.db.RecordSearch(ctx, req.Query, category); err != nil {
			p.logger.Debug("recording search failed", zap.Error(err))
		}
	}

	elapsed := time.Since(start)
	p.logger.Info("ingestion complete",
		zap.String("query", req.Query),
		zap.String("category", req.Category),
		zap.Int("fetched", len(articles)),
		zap.Int("saved", saved),
		zap.Duration("elapsed", elapsed),
	)

	return &Result{
		Query:    req.Query,
		Category: req.Category,
		Articles: articles,
		Saved:    saved,
		Elapsed:  elapsed,
	}, nil
}
