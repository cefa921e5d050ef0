package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"newslens/internal/config"
	"newslens/internal/database"
	"newslens/internal/enrich"
	"newslens/internal/logging"
	"newslens/internal/newsapi"
	"newslens/internal/pipeline"
	"newslens/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logger, err := logging.New(cfg.LogPath(), cfg.Debug)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logger.Sync()

	db, err := database.NewDB(cfg.DatabasePath(), database.DefaultConfig())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// A missing key is fine at startup; fetching will ask for one.
	apiKey, err := config.LoadAPIKey()
	if err != nil && !errors.Is(err, config.ErrNoAPIKey) {
		return fmt.Errorf("loading API key: %w", err)
	}

	client := newsapi.NewClient("", logger)
	enricher := enrich.NewEnricher(
		enrich.NewLexiconScorer(),
		enrich.NewExtractor(cfg.StopWordSet(), cfg.MinTokenLength, cfg.MaxKeywords),
	)
	dispatcher := pipeline.NewDispatcher(pipeline.New(client, enricher, db, logger))
	defer dispatcher.Close()

	return tui.Run(tui.RunOpts{
		Cfg:        cfg,
		DB:         db,
		Dispatcher: dispatcher,
		APIKey:     apiKey,
		Logger:     logger,
	})
}
