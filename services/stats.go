package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"rent591-scraper/models"
	"rent591-scraper/utils"
)

// StatsService computes and reports the aggregate statistics of a crawl run.
type StatsService struct {
	logger *utils.Logger
}

// NewStatsService creates a StatsService with the given logger.
func NewStatsService(logger *utils.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// Compute builds run statistics from the orchestrator's counters. The
// success rate is success/total as a percentage, rounded to two decimals;
// it stays zero when nothing was discovered.
func (s *StatsService) Compute(startedAt time.Time, totalHouses, successCount int, failedIDs []string) *models.CrawlStats {
	if failedIDs == nil {
		failedIDs = []string{}
	}

	stats := &models.CrawlStats{
		StartedAt:      startedAt,
		TotalHouses:    totalHouses,
		SuccessCount:   successCount,
		FailedIDs:      failedIDs,
		ElapsedSeconds: round2(time.Since(startedAt).Seconds()),
	}
	if totalHouses > 0 {
		stats.SuccessRate = round2(float64(successCount) / float64(totalHouses) * 100)
	}
	return stats
}

// Print emits a human-readable summary of the run.
func (s *StatsService) Print(r *models.CrawlStats) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  RENT591 CRAWL SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("  Started at     : %s\n", r.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Houses found   : \033[1m%d\033[0m\n", r.TotalHouses)
	fmt.Printf("  Succeeded      : \033[1;32m%d\033[0m\n", r.SuccessCount)
	fmt.Printf("  Failed         : \033[1;31m%d\033[0m\n", len(r.FailedIDs))
	if len(r.FailedIDs) > 0 {
		fmt.Printf("  Failed IDs     : %s\n", strings.Join(r.FailedIDs, ", "))
	}
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Elapsed        : %.2fs\n", r.ElapsedSeconds)
	fmt.Printf("  Success rate   : \033[1m%.2f%%\033[0m\n", r.SuccessRate)

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
