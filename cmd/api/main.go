package main

import (
	"context"
	"os"

	"rent591-scraper/api"
	"rent591-scraper/config"
	"rent591-scraper/scraper/rent591"
	"rent591-scraper/storage"
	"rent591-scraper/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger()

	ctx := context.Background()

	store, err := storage.NewBigQueryStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to BigQuery: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	scraper := rent591.New(cfg, logger)

	server := api.NewServer(store, scraper, logger)
	if err := server.Start(cfg.APIPort); err != nil {
		logger.Error("API server stopped: %v", err)
		os.Exit(1)
	}
}
