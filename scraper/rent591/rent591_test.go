package rent591

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rent591-scraper/config"
	"rent591-scraper/models"
	"rent591-scraper/utils"
)

func newTestScraper(baseURL string) *Scraper {
	cfg := &config.Config{
		BaseURL:       baseURL,
		UserAgent:     testUserAgent,
		MaxRetries:    3,
		RetryDelayMs:  1,
		HTTPTimeoutMs: 5000,
	}
	s := New(cfg, utils.NewLogger())
	// No real pacing in tests.
	s.retry.JitterMin = 0
	s.retry.JitterMax = 0
	s.retry.Sleep = func(time.Duration) {}
	return s
}

func TestFetchDetailParsesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/18036985", r.URL.Path)
		_, _ = w.Write([]byte(buildDetailPage("")))
	}))
	defer srv.Close()

	house, err := newTestScraper(srv.URL).FetchDetail(context.Background(), "18036985")
	require.NoError(t, err)
	require.Equal(t, "18036985", house.HouseID)
	require.Equal(t, "台中市豪華套房出租", house.Title)
	require.Equal(t, models.GenderFemaleOnly, house.GenderRestriction)
}

func TestFetchDetailRetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(buildDetailPage("")))
	}))
	defer srv.Close()

	house, err := newTestScraper(srv.URL).FetchDetail(context.Background(), "77")
	require.NoError(t, err)
	require.EqualValues(t, 3, atomic.LoadInt32(&calls))
	require.False(t, house.IsEmpty())
}

func TestFetchDetailExhaustedRetriesYieldsEmptyRecord(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	house, err := newTestScraper(srv.URL).FetchDetail(context.Background(), "999")
	require.Error(t, err)
	require.EqualValues(t, 3, atomic.LoadInt32(&calls), "one call per attempt")

	// Degrade gracefully: the record still exists, fully keyed, ID set.
	require.NotNil(t, house)
	require.Equal(t, "999", house.HouseID)
	require.True(t, house.IsEmpty())
	require.Equal(t, models.GenderUnrestricted, house.GenderRestriction)
}

func TestSearchHouseIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/list", r.URL.Path)
		require.Equal(t, "8", r.URL.Query().Get("region"))
		require.Equal(t, "0", r.URL.Query().Get("kind"))
		require.Equal(t, "money_desc", r.URL.Query().Get("sort"))

		_, _ = w.Write([]byte(`<html><body>
			<a href="https://rent.591.com.tw/111">a</a>
			<a href="https://rent.591.com.tw/222">b</a>
			<a href="https://example.com/333">c</a>
		</body></html>`))
	}))
	defer srv.Close()

	filter := map[string]string{"region": "8", "kind": "0", "sort": "money_desc"}
	ids, err := newTestScraper(srv.URL).SearchHouseIDs(context.Background(), filter)
	require.NoError(t, err)
	require.Equal(t, 2, ids.Size())
	require.Equal(t, []string{"111", "222"}, ids.Values())
}

func TestSearchHouseIDsFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ids, err := newTestScraper(srv.URL).SearchHouseIDs(context.Background(), nil)
	require.Error(t, err)
	require.Equal(t, 0, ids.Size(), "failed search degrades to an empty set")
}
