package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rent591-scraper/models"
)

func TestWriteHousesDatedFile(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, dir)

	h := models.NewEmptyHouse("18036985")
	h.Title = "台中市豪華套房出租"
	h.GenderRestriction = models.GenderFemaleOnly

	path, err := fs.WriteHouses([]*models.House{h})
	if err != nil {
		t.Fatalf("WriteHouses: %v", err)
	}

	wantName := "houses_" + time.Now().Format("2006-01-02") + ".json"
	if filepath.Base(path) != wantName {
		t.Errorf("filename: got %q, want %q", filepath.Base(path), wantName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	var got []*models.House
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Title != "台中市豪華套房出租" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got[0].GenderRestriction != models.GenderFemaleOnly {
		t.Errorf("CJK field mangled: %q", got[0].GenderRestriction)
	}
}

func TestWriteHousesNilBecomesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, dir)

	path, err := fs.WriteHouses(nil)
	if err != nil {
		t.Fatalf("WriteHouses: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	var got []*models.House
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected an empty JSON array, got %s", data)
	}
}

func TestWriteStatsCreatesStatsDir(t *testing.T) {
	base := t.TempDir()
	statsDir := filepath.Join(base, "stats")
	fs := NewFileStore(base, statsDir)

	stats := &models.CrawlStats{
		StartedAt:      time.Now(),
		TotalHouses:    3,
		SuccessCount:   2,
		FailedIDs:      []string{"999"},
		ElapsedSeconds: 12.34,
		SuccessRate:    66.67,
	}

	path, err := fs.WriteStats(stats)
	if err != nil {
		t.Fatalf("WriteStats: %v", err)
	}
	if filepath.Dir(path) != statsDir {
		t.Errorf("stats path: got %q, want under %q", path, statsDir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	var got models.CrawlStats
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.SuccessRate != 66.67 || got.TotalHouses != 3 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}
