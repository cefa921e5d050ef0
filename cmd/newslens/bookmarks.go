package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		articles, err := db.Bookmarked(context.Background())
		if err != nil {
			return fmt.Errorf("listing bookmarks: %w", err)
		}
		if len(articles) == 0 {
			fmt.Println("No bookmarks yet.")
			return nil
		}

		for _, a := range articles {
			fmt.Printf("  ★ %s (%s)\n", a.Title, a.Source)
			fmt.Printf("    %s\n", a.URL)
		}
		return nil
	},
}

var bookmarksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all bookmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		cleared, err := db.ClearBookmarks(context.Background())
		if err != nil {
			return fmt.Errorf("clearing bookmarks: %w", err)
		}
		if cleared == 0 {
			fmt.Println("No bookmarks to clear.")
		} else {
			fmt.Printf("Cleared %d bookmark(s).\n", cleared)
		}
		return nil
	},
}

func init() {
	bookmarksCmd.AddCommand(bookmarksClearCmd)
}
