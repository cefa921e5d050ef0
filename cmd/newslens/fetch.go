package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"newslens/internal/config"
	"newslens/internal/database"
	"newslens/internal/enrich"
	"newslens/internal/logging"
	"newslens/internal/newsapi"
	"newslens/internal/pipeline"
)

const fetchTimeout = 60 * time.Second

var (
	flagCategory string
	flagCountry  string
	flagLimit    int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and store top headlines",
	Long: `Fetch top headlines for a country and category, run sentiment scoring and
keyword extraction on each article, and store the batch in the local database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagCategory != "" && !config.ValidCategory(flagCategory) {
			return fmt.Errorf("unknown category %q (one of: %s)",
				flagCategory, strings.Join(config.Categories, ", "))
		}

		cfg, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		apiKey, err := config.LoadAPIKey()
		if err != nil {
			return err
		}

		req := pipeline.Request{
			Category:  flagCategory,
			Country:   cfg.Country,
			PageLimit: cfg.PageSize,
		}
		if flagCountry != "" {
			req.Country = flagCountry
		}
		if flagLimit > 0 {
			req.PageLimit = flagLimit
		}

		result, err := runPipeline(cfg, db, apiKey, req)
		if err != nil {
			return err
		}

		fmt.Printf("Fetched %d articles, saved %d (%s)\n\n",
			len(result.Articles), result.Saved, result.Elapsed.Round(time.Millisecond))
		printArticles(result.Articles)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&flagCategory, "category", "", "headline category (e.g. business, technology)")
	fetchCmd.Flags().StringVar(&flagCountry, "country", "", "2-letter country code (default from config)")
	fetchCmd.Flags().IntVar(&flagLimit, "limit", 0, "max articles to fetch (default from config)")
}

// runPipeline executes one ingestion synchronously with a console logger.
func runPipeline(cfg *config.Config, db *database.DB, apiKey string, req pipeline.Request) (*pipeline.Result, error) {
	logger := logging.Console(cfg.Debug)
	defer logger.Sync()

	client := newsapi.NewClient("", logger)
	enricher := enrich.NewEnricher(
		enrich.NewLexiconScorer(),
		enrich.NewExtractor(cfg.StopWordSet(), cfg.MinTokenLength, cfg.MaxKeywords),
	)
	pipe := pipeline.New(client, enricher, db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	return pipe.Run(ctx, apiKey, req)
}

func sentimentMark(label string) string {
	switch label {
	case database.SentimentPositive:
		return "+"
	case database.SentimentNegative:
		return "-"
	default:
		return "·"
	}
}

func printArticles(articles []database.Article) {
	for _, a := range articles {
		line := fmt.Sprintf("  %s %s", sentimentMark(a.SentimentLabel), a.Title)
		if a.Source != "" {
			line += fmt.Sprintf(" (%s)", a.Source)
		}
		fmt.Println(line)
	}
}
