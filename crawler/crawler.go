package crawler

import (
	"context"
	"math/rand"
	"time"

	"rent591-scraper/config"
	"rent591-scraper/models"
	"rent591-scraper/services"
	"rent591-scraper/storage"
	"rent591-scraper/utils"
)

// HouseSource is the part of the rent591 scraper the crawler drives.
type HouseSource interface {
	SearchHouseIDs(ctx context.Context, filter map[string]string) (*utils.IDSet, error)
	FetchDetail(ctx context.Context, houseID string) (*models.House, error)
}

// RunRecorder writes the dated artifacts of a run.
type RunRecorder interface {
	WriteHouses(houses []*models.House) (string, error)
	WriteStats(stats *models.CrawlStats) (string, error)
}

// Crawler drives one scrape run: search, sequential per-ID detail fetch,
// aggregation, and persistence. Fetching is deliberately single-threaded
// with randomized pauses between requests.
type Crawler struct {
	cfg    *config.Config
	source HouseSource
	sink   storage.HouseWriter
	files  RunRecorder
	stats  *services.StatsService
	logger *utils.Logger

	sleep func(time.Duration)
}

// New creates a Crawler wired to the given source, warehouse sink, and file
// recorder.
func New(cfg *config.Config, source HouseSource, sink storage.HouseWriter, files RunRecorder, logger *utils.Logger) *Crawler {
	return &Crawler{
		cfg:    cfg,
		source: source,
		sink:   sink,
		files:  files,
		stats:  services.NewStatsService(logger),
		logger: logger,
		sleep:  time.Sleep,
	}
}

// Run executes one crawl and returns its statistics. A single failed house
// degrades that one record; a failed warehouse insert is logged and the run
// still reports its scrape statistics.
func (c *Crawler) Run(ctx context.Context) *models.CrawlStats {
	startedAt := time.Now()

	filter := map[string]string{
		"region": c.cfg.SearchRegion,
		"kind":   c.cfg.SearchKind,
		"sort":   c.cfg.SearchSort,
	}
	c.logger.Info("[crawler] Searching listings — region=%s kind=%s sort=%s",
		filter["region"], filter["kind"], filter["sort"])

	ids, err := c.source.SearchHouseIDs(ctx, filter)
	if err != nil {
		c.logger.Error("[crawler] Search failed: %v", err)
	}
	c.sleep(searchDelay())

	houseIDs := ids.Values()
	c.logger.Info("[crawler] Found %d houses: %v", len(houseIDs), houseIDs)

	var houses []*models.House
	failedIDs := make([]string, 0)
	for _, id := range houseIDs {
		house, err := c.source.FetchDetail(ctx, id)
		if err != nil {
			c.logger.Warn("[crawler] House %s failed: %v", id, err)
			failedIDs = append(failedIDs, id)
			continue
		}
		if house.IsEmpty() {
			c.logger.Warn("[crawler] House %s returned an empty record", id)
			failedIDs = append(failedIDs, id)
			continue
		}
		houses = append(houses, house)
	}

	stats := c.stats.Compute(startedAt, len(houseIDs), len(houses), failedIDs)

	if path, err := c.files.WriteHouses(houses); err != nil {
		c.logger.Error("[crawler] Writing raw records failed: %v", err)
	} else {
		c.logger.Info("[crawler] Raw records saved to %s", path)
	}

	if path, err := c.files.WriteStats(stats); err != nil {
		c.logger.Error("[crawler] Writing run stats failed: %v", err)
	} else {
		c.logger.Info("[crawler] Run stats saved to %s", path)
	}

	if len(houses) > 0 {
		if err := c.sink.Insert(ctx, houses); err != nil {
			c.logger.Error("[crawler] Warehouse insert failed: %v", err)
		}
	}

	c.stats.Print(stats)
	return stats
}

// searchDelay returns a random pause in [1,3) seconds, taken once after the
// search fetch.
func searchDelay() time.Duration {
	return time.Second + time.Duration(rand.Int63n(int64(2*time.Second)))
}
