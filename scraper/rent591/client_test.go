package rent591

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rent591-scraper/utils"
)

const testUserAgent = "test-agent/1.0"

func newTestClient() *Client {
	return NewClient(testUserAgent, 5*time.Second, utils.NewLogger())
}

func TestFetchReturnsBody(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	body, err := newTestClient().Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "<html>ok</html>", body)
	require.Equal(t, testUserAgent, gotUA, "fixed User-Agent header must be sent")
}

func TestFetchNon2xxIsError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusTooManyRequests, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		body, err := newTestClient().Fetch(context.Background(), srv.URL)
		require.Error(t, err, "status %d should be a fetch failure", status)
		require.Empty(t, body)
		srv.Close()
	}
}

func TestFetchTransportErrorIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient().Fetch(context.Background(), srv.URL)
	require.Error(t, err)
}
