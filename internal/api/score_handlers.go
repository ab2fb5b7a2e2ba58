package api

import (
	"net/http"
	"strconv"

	"github.com/vytor/braingym/internal/errors"
	"github.com/vytor/braingym/internal/models"
)

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.Menu(s.Sessions.BestScores()))
}

func (s *Server) handleBestScores(w http.ResponseWriter, r *http.Request) {
	best, err := s.Scores.BestScores(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, best)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	filter := models.ResultFilter{GameID: models.GameID(r.URL.Query().Get("game"))}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, errors.NewValidationError("limit", "must be an integer"))
			return
		}
		filter.Limit = limit
	}

	records, err := s.Scores.RecentResults(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, records)
}
