package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rent591-scraper/models"
)

const defaultListLimit = 100

// notFoundMessage is the user-visible body when a house is neither stored
// nor reachable live. It ships with a normal success status, not a 404.
const notFoundMessage = "未找到該房屋資料"

// handleListHouses serves GET /houses?limit=N.
func (s *Server) handleListHouses(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	houses, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.logger.Error("[api] List query failed: %v", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "query failed"})
		return
	}

	s.writeJSON(w, http.StatusOK, houses)
}

// handleGetHouse serves GET /houses/{house_id}. A warehouse miss triggers a
// synchronous live scrape; a usable result is persisted before it is
// returned, so the dataset grows lazily on cache miss.
func (s *Server) handleGetHouse(w http.ResponseWriter, r *http.Request) {
	houseID := mux.Vars(r)["house_id"]

	house, err := s.store.GetByID(r.Context(), houseID)
	if err != nil {
		s.logger.Error("[api] Lookup for %s failed: %v", houseID, err)
	}
	if house != nil {
		s.writeJSON(w, http.StatusOK, house)
		return
	}

	s.logger.Info("[api] House %s not in warehouse — fetching live", houseID)
	live, err := s.fetcher.FetchDetail(r.Context(), houseID)
	if err != nil || live.IsEmpty() {
		if err != nil {
			s.logger.Warn("[api] Live fetch for %s failed: %v", houseID, err)
		}
		s.writeJSON(w, http.StatusOK, map[string]string{"error": notFoundMessage})
		return
	}

	if err := s.store.Insert(r.Context(), []*models.House{live}); err != nil {
		s.logger.Error("[api] Backfill insert for %s failed: %v", houseID, err)
	}
	s.writeJSON(w, http.StatusOK, live)
}
