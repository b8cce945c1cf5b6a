package handler

import (
	"errors"
	"net/http"

	"github.com/kvanta/lockpulse/internal/analytics"
	"github.com/kvanta/lockpulse/internal/domain"
	"github.com/kvanta/lockpulse/internal/logger"
	"github.com/kvanta/lockpulse/internal/metrics"
)

// ProfileResponse wraps a user profile. UserProfile is null for usernames
// that never appear in the entry log; that is not an error condition.
type ProfileResponse struct {
	UserProfile *domain.UserProfile `json:"user_profile"`
}

// HandleGetUserProfile serves the lifetime profile for one username.
// @Summary Get user profile
// @Description Get lifetime visit totals, streaks and achievements for a username
// @Tags profile
// @Produce json
// @Param username query string true "Username (case-insensitive exact match)"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/profile [get]
func HandleGetUserProfile(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username, ok := GetQueryParam(r, w, "username")
		if !ok {
			return
		}
		if !validateFilterParams(w, r, username, "", "") {
			return
		}

		metrics.ProfileLookups.Inc()

		profile, err := svc.GetUserProfile(r.Context(), username)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				metrics.ProfilesNotFound.Inc()
				log.Debug("Profile lookup for unknown user", "username", username)
				respondJSON(w, http.StatusOK, ProfileResponse{UserProfile: nil})
				return
			}
			respondServiceError(w, r, ErrMsgGetProfileFailed, err)
			return
		}

		log.Info("Profile retrieved", "username", username, "total_visits", profile.TotalVisits)

		respondJSON(w, http.StatusOK, ProfileResponse{UserProfile: profile})
	}
}
