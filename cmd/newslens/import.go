package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"newslens/internal/export"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import articles from a CSV export",
	Long: `Read a CSV file produced by 'newslens export' and merge its rows into the
local database. Existing rows are updated by URL; bookmarks already set
locally are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		articles, err := export.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		_, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		imported, err := db.ImportArticles(context.Background(), articles)
		if err != nil {
			return fmt.Errorf("importing articles: %w", err)
		}
		fmt.Printf("Imported %d article(s) from %s\n", imported, args[0])
		return nil
	},
}
