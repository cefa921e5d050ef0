package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"newslens/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export stored articles to a CSV file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("newslens-export-%s.csv", time.Now().Format("20060102-150405"))
		if len(args) == 1 {
			path = args[0]
		}

		_, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		articles, err := db.AllArticles(context.Background())
		if err != nil {
			return fmt.Errorf("loading articles: %w", err)
		}
		if len(articles) == 0 {
			fmt.Println("No articles to export.")
			return nil
		}

		if err := export.WriteFile(path, articles); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Printf("Exported %d article(s) to %s\n", len(articles), path)
		return nil
	},
}
