// Package newsapi is the client for the remote news source. It speaks the
// two read-only query modes, normalizes raw records into store articles, and
// classifies failures so the presenter can phrase them.
package newsapi

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"newslens/internal/database"
)

const (
	defaultBaseURL = "https://newsapi.org/v2"
	userAgent      = "newslens/0.2"

	// One attempt per call, 30 second budget. The caller decides about retries.
	requestTimeout = 30 * time.Second

	// Search mode only looks back this far.
	searchWindow = 7 * 24 * time.Hour

	// Upstream marks withdrawn articles with this title.
	removedTitle = "[Removed]"
)

type Client struct {
	http   *resty.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewClient builds a client against baseURL, or the production endpoint when
// baseURL is empty. A nil logger falls back to a no-op.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return &Client{
		http:   httpClient,
		logger: logger,
		now:    time.Now,
	}
}

// Fetch runs one query and returns normalized articles. Items without a
// usable title are dropped silently; a malformed publish date fails the whole
// call.
func (c *Client) Fetch(ctx context.Context, req Request) ([]database.Article, error) {
	if req.APIKey == "" {
		return nil, ErrMissingKey
	}

	endpoint, params := c.buildQuery(req)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	var payload response
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		if !resp.IsSuccess() {
			// No machine-readable body; report the transport status.
			return nil, &APIError{StatusCode: resp.StatusCode(), Message: resp.Status()}
		}
		return nil, &ParseError{Err: err}
	}

	if payload.Status != "ok" {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Code:       payload.Code,
			Message:    payload.Message,
		}
	}

	return c.normalize(payload.Articles)
}

func (c *Client) buildQuery(req Request) (string, map[string]string) {
	pageSize := req.PageLimit
	if pageSize <= 0 {
		pageSize = 50
	}

	if req.Query != "" {
		return "/everything", map[string]string{
			"apiKey":   req.APIKey,
			"q":        req.Query,
			"language": "en",
			"sortBy":   "publishedAt",
			"pageSize": strconv.Itoa(pageSize),
			"from":     c.now().Add(-searchWindow).Format("2006-01-02"),
		}
	}

	country := req.Country
	if country == "" {
		country = "us"
	}
	params := map[string]string{
		"apiKey":   req.APIKey,
		"country":  country,
		"pageSize": strconv.Itoa(pageSize),
		"language": "en",
	}
	if req.Category != "" && req.Category != "all" {
		params["category"] = req.Category
	}
	return "/top-headlines", params
}

func (c *Client) normalize(items []rawArticle) ([]database.Article, error) {
	articles := make([]database.Article, 0, len(items))
	dropped := 0

	for _, item := range items {
		if item.Title == "" || item.Title == removedTitle {
			dropped++
			continue
		}

		published, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			return nil, &ParseError{Field: "publishedAt", Err: err}
		}

		articles = append(articles, database.Article{
			Title:          item.Title,
			Description:    cleanText(item.Description),
			Content:        cleanText(item.Content),
			URL:            item.URL,
			Source:         item.Source.Name,
			PublishedAt:    published.UTC(),
			ImageURL:       item.URLToImage,
			SentimentLabel: database.SentimentNeutral,
		})
	}

	if dropped > 0 {
		c.logger.Debug("dropped unusable items", zap.Int("count", dropped))
	}
	return articles, nil
}
