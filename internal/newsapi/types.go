package newsapi

// Request selects one of the two query modes. A non-empty Query drives the
// search endpoint; otherwise top headlines for Country, optionally narrowed
// by Category ("all" and "" mean no filter).
type Request struct {
	APIKey    string
	Query     string
	Category  string
	Country   string
	PageLimit int
}

// response is the upstream envelope. Status is "ok" or "error"; Code and
// Message are only set on error.
type response struct {
	Status       string       `json:"status"`
	Code         string       `json:"code,omitempty"`
	Message      string       `json:"message,omitempty"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
}

// rawArticle mirrors the upstream article record.
type rawArticle struct {
	Source      rawSource `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
	Content     string    `json:"content"`
}

type rawSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
