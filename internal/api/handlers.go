// Package api exposes stored ranking runs over HTTP. It is a read-only
// view; computing rankings stays in the CLI and scheduler.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jmoran/mlbrank/internal/ranking"
	"github.com/jmoran/mlbrank/internal/storage"
	"github.com/jmoran/mlbrank/pkg/logger"
)

// RankingsHandler serves stored ranking runs.
type RankingsHandler struct {
	repo   *storage.Repository
	logger *logger.Logger
}

// NewRankingsHandler creates a rankings handler.
func NewRankingsHandler(repo *storage.Repository, log *logger.Logger) *RankingsHandler {
	return &RankingsHandler{repo: repo, logger: log}
}

// rankingsResponse is the JSON envelope for one run.
type rankingsResponse struct {
	Run   *storage.Run         `json:"run"`
	Teams []ranking.RankedTeam `json:"teams"`
}

// GetRankings returns the latest stored run, optionally filtered by the
// season query parameter.
func (h *RankingsHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	season := 0
	if raw := r.URL.Query().Get("season"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "season must be a positive integer")
			return
		}
		season = parsed
	}

	run, err := h.repo.LatestRun(r.Context(), season)
	if err != nil {
		if storage.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "no stored ranking run")
			return
		}
		h.logger.WithError(err).Error("Failed to load latest run")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	teams, err := h.repo.RunRows(r.Context(), run.ID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load run rows")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, rankingsResponse{Run: run, Teams: teams})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
