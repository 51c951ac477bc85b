package main

import (
	"context"
	"os"

	"rent591-scraper/config"
	"rent591-scraper/crawler"
	"rent591-scraper/scraper/rent591"
	"rent591-scraper/storage"
	"rent591-scraper/utils"
)

func main() {
	cfg := config.Load()

	logger, logFile, err := utils.NewFileLogger(cfg.LogDir)
	if err != nil {
		logger = utils.NewLogger()
		logger.Warn("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
	}

	logger.Info("=== rent591 crawl starting ===")
	logger.Info("Config — table: %s | region: %s | kind: %s | sort: %s | retries: %d",
		cfg.TablePath(), cfg.SearchRegion, cfg.SearchKind, cfg.SearchSort, cfg.MaxRetries)

	ctx := context.Background()

	store, err := storage.NewBigQueryStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to BigQuery: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	scraper := rent591.New(cfg, logger)
	files := storage.NewFileStore(cfg.OutputDir, cfg.StatsDir)

	c := crawler.New(cfg, scraper, store, files, logger)
	stats := c.Run(ctx)

	logger.Info("Done — %d/%d houses stored", stats.SuccessCount, stats.TotalHouses)
}
