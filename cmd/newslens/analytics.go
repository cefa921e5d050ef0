package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"newslens/internal/analytics"
)

var flagDays int

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Summarize recently stored articles",
	Long: `Aggregate the articles stored over the last N days into a sentiment
distribution plus the most frequent sources and keywords.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		days := cfg.AnalyticsDays
		if flagDays > 0 {
			days = flagDays
		}

		articles, err := db.RecentArticles(context.Background(), days)
		if err != nil {
			return fmt.Errorf("loading articles: %w", err)
		}

		report := analytics.Build(articles)
		if report.Total == 0 {
			fmt.Printf("No articles stored in the last %d days.\n", days)
			return nil
		}

		fmt.Printf("Articles (last %d days): %d\n", days, report.Total)
		fmt.Printf("Average sentiment: %+.3f\n\n", report.AverageScore)

		fmt.Printf("  positive %3.0f%% (%d)\n", report.Percent(report.Positive), report.Positive)
		fmt.Printf("  neutral  %3.0f%% (%d)\n", report.Percent(report.Neutral), report.Neutral)
		fmt.Printf("  negative %3.0f%% (%d)\n", report.Percent(report.Negative), report.Negative)

		if len(report.TopSources) > 0 {
			fmt.Println("\nTop sources:")
			for i, s := range report.TopSources {
				fmt.Printf("  %d. %s (%d)\n", i+1, s.Name, s.Count)
			}
		}
		if len(report.TopKeywords) > 0 {
			fmt.Println("\nTop keywords:")
			for i, k := range report.TopKeywords {
				fmt.Printf("  %d. %s (%d)\n", i+1, k.Name, k.Count)
			}
		}
		return nil
	},
}

func init() {
	analyticsCmd.Flags().IntVar(&flagDays, "days", 0, "window size in days (default from config)")
}
