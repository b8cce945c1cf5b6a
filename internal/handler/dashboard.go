package handler

import (
	"net/http"

	"github.com/kvanta/lockpulse/internal/analytics"
	"github.com/kvanta/lockpulse/internal/logger"
	"github.com/kvanta/lockpulse/internal/metrics"
)

// HandleGetDashboard serves the full analytics payload for the entry log.
// @Summary Get dashboard
// @Description Get the paginated entry list plus all aggregates for the requested filter and period
// @Tags entries
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50, max 500)"
// @Param lock_id query string false "Filter to one lock"
// @Param username query string false "Filter to one username (case-insensitive exact match)"
// @Param date query string false "Reference date (YYYY-MM-DD, YYYY-MM or RFC3339; malformed values fall back to now)"
// @Param period query string false "Period selector (day, month, last7, last30, mtd, season)"
// @Param season query string false "Season key (forces the season window)"
// @Success 200 {object} domain.DashboardPayload
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/entries [get]
func HandleGetDashboard(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		page, ok := getIntQueryParam(r, w, "page", 1, ErrMsgInvalidPage)
		if !ok {
			return
		}
		limit, ok := getIntQueryParam(r, w, "limit", 0, ErrMsgInvalidLimit)
		if !ok {
			return
		}
		period, ok := getPeriodQueryParam(r, w)
		if !ok {
			return
		}

		// Malformed dates are not a client error: the window resolver falls
		// back to a generic timestamp parse and then to now.
		req := analytics.DashboardRequest{
			Page:     page,
			Limit:    limit,
			LockID:   r.URL.Query().Get("lock_id"),
			Username: r.URL.Query().Get("username"),
			Date:     r.URL.Query().Get("date"),
			Period:   period,
			Season:   r.URL.Query().Get("season"),
		}
		if !validateFilterParams(w, r, req.Username, req.LockID, req.Season) {
			return
		}

		log.Debug("Dashboard request",
			"page", req.Page,
			"lock_id", req.LockID,
			"username", req.Username,
			"period", req.Period,
			"season", req.Season)

		payload, err := svc.GetDashboard(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetDashboardFailed, err)
			return
		}

		metrics.DashboardsServed.WithLabelValues(string(payload.Filters.Period)).Inc()
		log.Info("Dashboard assembled",
			"period", payload.Filters.Period,
			"total_entries", payload.Pagination.Total)

		respondJSON(w, http.StatusOK, payload)
	}
}
