package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"newslens/internal/config"
	"newslens/internal/pipeline"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search news and store the results",
	Long: `Search NewsAPI for articles matching the query, enrich them, and store
the results. The query is also appended to the local search history.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return fmt.Errorf("empty search query")
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
			Query:     query,
			PageLimit: cfg.PageSize,
		}
		if flagLimit > 0 {
			req.PageLimit = flagLimit
		}

		result, err := runPipeline(cfg, db, apiKey, req)
		if err != nil {
			return err
		}

		fmt.Printf("Found %d articles for %q, saved %d (%s)\n\n",
			len(result.Articles), query, result.Saved, result.Elapsed.Round(time.Millisecond))
		printArticles(result.Articles)
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&flagLimit, "limit", 0, "max articles to fetch (default from config)")
}
