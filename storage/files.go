package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rent591-scraper/models"
)

// FileStore writes the dated JSON artifacts of a crawl run: the raw records
// dump and the run statistics. Intermediate directories are created
// automatically.
type FileStore struct {
	outputDir string
	statsDir  string
}

// NewFileStore creates a FileStore writing records to outputDir and
// statistics to statsDir.
func NewFileStore(outputDir, statsDir string) *FileStore {
	return &FileStore{outputDir: outputDir, statsDir: statsDir}
}

// WriteHouses dumps the run's records to houses_YYYY-MM-DD.json and returns
// the path written.
func (f *FileStore) WriteHouses(houses []*models.House) (string, error) {
	if houses == nil {
		houses = []*models.House{}
	}
	path := filepath.Join(f.outputDir, fmt.Sprintf("houses_%s.json", datestamp()))
	return path, writeJSON(path, houses)
}

// WriteStats dumps the run statistics to crawl_stats_YYYY-MM-DD.json and
// returns the path written.
func (f *FileStore) WriteStats(stats *models.CrawlStats) (string, error) {
	path := filepath.Join(f.statsDir, fmt.Sprintf("crawl_stats_%s.json", datestamp()))
	return path, writeJSON(path, stats)
}

func datestamp() string {
	return time.Now().Format("2006-01-02")
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("files: create dir for %q: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("files: create %q: %w", path, err)
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		_ = file.Close()
		return fmt.Errorf("files: encode %q: %w", path, err)
	}

	return file.Close()
}
