package handler

import (
	"net/http"

	"github.com/kvanta/lockpulse/internal/analytics"
	"github.com/kvanta/lockpulse/internal/logger"
	"github.com/kvanta/lockpulse/internal/metrics"
)

// HandleGetLeaderboards serves the windowed and lifetime leaderboard sets.
// @Summary Get leaderboards
// @Description Get ranked top users, locks, early birds, night owls and streaks for the requested scope
// @Tags leaderboards
// @Produce json
// @Param period query string false "Period selector (day, month, last7, last30, mtd, season)"
// @Param date query string false "Reference date (YYYY-MM-DD, YYYY-MM or RFC3339; malformed values fall back to now)"
// @Param season query string false "Season key (forces the season window)"
// @Param lock_id query string false "Filter to one lock (day period only)"
// @Param username query string false "Filter to one username"
// @Param limit query int false "Top-N size (default 5)"
// @Success 200 {object} analytics.Leaderboards
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/leaderboards [get]
func HandleGetLeaderboards(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		period, ok := getPeriodQueryParam(r, w)
		if !ok {
			return
		}
		limit, ok := getIntQueryParam(r, w, "limit", 0, ErrMsgInvalidLimit)
		if !ok {
			return
		}

		req := analytics.LeaderboardRequest{
			Period:   period,
			Date:     r.URL.Query().Get("date"),
			Season:   r.URL.Query().Get("season"),
			Username: r.URL.Query().Get("username"),
			LockID:   r.URL.Query().Get("lock_id"),
			Limit:    limit,
		}
		if !validateFilterParams(w, r, req.Username, req.LockID, req.Season) {
			return
		}

		log.Debug("Leaderboard request", "period", req.Period, "season", req.Season, "limit", req.Limit)

		boards, err := svc.GetLeaderboards(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardsFailed, err)
			return
		}

		metrics.LeaderboardsServed.WithLabelValues(string(boards.Window.PeriodKind)).Inc()
		log.Info("Leaderboards computed", "period", boards.Window.PeriodKind)

		respondJSON(w, http.StatusOK, boards)
	}
}
