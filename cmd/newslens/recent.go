package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent search queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		queries, err := db.RecentSearches(context.Background(), cfg.RecentSearches)
		if err != nil {
			return fmt.Errorf("listing searches: %w", err)
		}
		if len(queries) == 0 {
			fmt.Println("No searches yet.")
			return nil
		}

		for i, q := range queries {
			fmt.Printf("  %d. %s\n", i+1, q)
		}
		return nil
	},
}
