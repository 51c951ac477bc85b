package services

import (
	"testing"
	"time"

	"rent591-scraper/utils"
)

func TestStatsCountsBalance(t *testing.T) {
	svc := NewStatsService(utils.NewLogger())

	tests := []struct {
		name      string
		total     int
		success   int
		failedIDs []string
	}{
		{"all succeed", 5, 5, nil},
		{"partial failure", 5, 3, []string{"111", "222"}},
		{"all fail", 2, 0, []string{"111", "222"}},
		{"nothing found", 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := svc.Compute(time.Now(), tt.total, tt.success, tt.failedIDs)

			if stats.SuccessCount+len(stats.FailedIDs) != stats.TotalHouses {
				t.Errorf("success(%d) + failed(%d) != total(%d)",
					stats.SuccessCount, len(stats.FailedIDs), stats.TotalHouses)
			}
			if stats.FailedIDs == nil {
				t.Error("FailedIDs must never be nil")
			}
			if stats.ElapsedSeconds < 0 {
				t.Errorf("ElapsedSeconds: got %f", stats.ElapsedSeconds)
			}
		})
	}
}

func TestStatsSuccessRate(t *testing.T) {
	svc := NewStatsService(utils.NewLogger())

	tests := []struct {
		total   int
		success int
		want    float64
	}{
		{3, 1, 33.33},
		{3, 2, 66.67},
		{4, 4, 100},
		{7, 2, 28.57},
		{0, 0, 0},
	}

	for _, tt := range tests {
		failed := make([]string, tt.total-tt.success)
		stats := svc.Compute(time.Now(), tt.total, tt.success, failed)
		if stats.SuccessRate != tt.want {
			t.Errorf("rate for %d/%d: got %.2f, want %.2f",
				tt.success, tt.total, stats.SuccessRate, tt.want)
		}
	}
}
