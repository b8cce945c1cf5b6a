package handler

import (
	"net/http"

	"github.com/kvanta/lockpulse/internal/analytics"
	"github.com/kvanta/lockpulse/internal/domain"
	"github.com/kvanta/lockpulse/internal/logger"
	"github.com/kvanta/lockpulse/internal/metrics"
)

// SeasonsResponse lists the configured season catalog.
type SeasonsResponse struct {
	Seasons []domain.Season `json:"seasons"`
}

// SeasonProgressResponse wraps a user's season progress. Progress is null
// when the season key is unknown.
type SeasonProgressResponse struct {
	Progress *domain.SeasonProgress `json:"progress"`
}

// HandleListSeasons serves the season catalog.
// @Summary List seasons
// @Description Get all configured seasons in chronological order
// @Tags seasons
// @Produce json
// @Success 200 {object} SeasonsResponse
// @Router /api/v1/seasons [get]
func HandleListSeasons(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, SeasonsResponse{Seasons: svc.Seasons()})
	}
}

// HandleGetSeasonProgress serves one user's progress within a season.
// @Summary Get season progress
// @Description Get points, rank, streaks and level for a username within a season window
// @Tags seasons
// @Produce json
// @Param season query string true "Season key"
// @Param username query string true "Username (case-insensitive exact match)"
// @Success 200 {object} SeasonProgressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/seasons/progress [get]
func HandleGetSeasonProgress(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		seasonKey, ok := GetQueryParam(r, w, "season")
		if !ok {
			return
		}
		username, ok := GetQueryParam(r, w, "username")
		if !ok {
			return
		}

		progress, err := svc.GetSeasonProgress(r.Context(), seasonKey, username)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSeasonProgressFailed, err)
			return
		}

		if progress == nil {
			log.Debug("Season progress for unknown season", "season", seasonKey)
		} else {
			metrics.SeasonProgressServed.Inc()
			log.Info("Season progress computed",
				"season", seasonKey,
				"username", username,
				"points", progress.Points,
				"rank", progress.Rank)
		}

		respondJSON(w, http.StatusOK, SeasonProgressResponse{Progress: progress})
	}
}
