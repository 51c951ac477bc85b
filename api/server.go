package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"rent591-scraper/models"
	"rent591-scraper/storage"
	"rent591-scraper/utils"
)

// DetailFetcher scrapes a single listing live. The API uses it to backfill
// the warehouse when a requested house is not stored yet.
type DetailFetcher interface {
	FetchDetail(ctx context.Context, houseID string) (*models.House, error)
}

// Server exposes the read API over the warehouse.
type Server struct {
	store   storage.HouseStore
	fetcher DetailFetcher
	logger  *utils.Logger
}

// NewServer creates a Server backed by the given warehouse and live fetcher.
func NewServer(store storage.HouseStore, fetcher DetailFetcher, logger *utils.Logger) *Server {
	return &Server{store: store, fetcher: fetcher, logger: logger}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/houses", s.handleListHouses).Methods(http.MethodGet)
	r.HandleFunc("/houses/{house_id}", s.handleGetHouse).Methods(http.MethodGet)
	return r
}

// Start runs the HTTP server on the given port, blocking until it stops.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.logger.Info("[api] Listening on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		s.logger.Error("[api] Encoding response failed: %v", err)
	}
}
