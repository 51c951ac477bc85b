package rent591

import (
	"context"
	"net/url"
	"time"

	"rent591-scraper/config"
	"rent591-scraper/models"
	"rent591-scraper/utils"
)

// Scraper fetches and parses rent.591.com.tw pages. It is the single source
// of listing data for both the crawler and the read API's backfill path.
type Scraper struct {
	baseURL string
	client  *Client
	retry   *utils.RetryConfig
	logger  *utils.Logger
}

// New creates a ready-to-use Scraper from the application config.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		baseURL: cfg.BaseURL,
		client:  NewClient(cfg.UserAgent, time.Duration(cfg.HTTPTimeoutMs)*time.Millisecond, logger),
		retry:   utils.NewRetryConfig(cfg.MaxRetries, time.Duration(cfg.RetryDelayMs)*time.Millisecond, logger),
		logger:  logger,
	}
}

// SearchHouseIDs fetches a single search-results page for the given filter
// and returns the set of listing IDs found on it. There is no pagination:
// one search request per run. On fetch failure the set is empty and the
// error is returned for logging.
func (s *Scraper) SearchHouseIDs(ctx context.Context, filter map[string]string) (*utils.IDSet, error) {
	searchURL := s.searchURL(filter)
	s.logger.Info("[rent591] Searching %s", searchURL)

	html, err := s.client.Fetch(ctx, searchURL)
	if err != nil {
		return utils.NewIDSet(), err
	}
	return ExtractHouseIDs(html), nil
}

// FetchDetail fetches and parses one listing page, retrying the fetch with
// the configured policy. When the page cannot be fetched at all, the
// returned record is empty (ID still set) and the error reports the
// exhausted retries.
func (s *Scraper) FetchDetail(ctx context.Context, houseID string) (*models.House, error) {
	var html string
	err := s.retry.Do("fetch-house-"+houseID, func() error {
		var ferr error
		html, ferr = s.client.Fetch(ctx, s.DetailURL(houseID))
		return ferr
	})
	if err != nil {
		return models.NewEmptyHouse(houseID), err
	}

	return ParseHouseDetail(houseID, html), nil
}

// DetailURL returns the deterministic detail-page URL for a listing ID.
func (s *Scraper) DetailURL(houseID string) string {
	return s.baseURL + "/" + houseID
}

func (s *Scraper) searchURL(filter map[string]string) string {
	params := url.Values{}
	for k, v := range filter {
		params.Set(k, v)
	}
	return s.baseURL + "/list?" + params.Encode()
}
