package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"newslens/internal/config"
	"newslens/internal/database"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "newslens",
	Short: "Terminal news reader with sentiment scoring",
	Long: `newslens pulls headlines from NewsAPI, scores each article's sentiment,
extracts its keywords, and keeps everything in a local SQLite database.

Run without arguments to open the interactive reader.`,
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(keyCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newslens %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// openStore loads the configuration and opens the article database. The
// caller owns the returned handle and must close it.
func openStore() (*config.Config, *database.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := database.NewDB(cfg.DatabasePath(), database.DefaultConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
