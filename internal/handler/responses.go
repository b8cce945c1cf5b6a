package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kvanta/lockpulse/internal/domain"
	"github.com/kvanta/lockpulse/internal/logger"
	"github.com/kvanta/lockpulse/internal/metrics"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. CorrelationID carries the
// request ID so a client report can be matched to server logs.
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response tagged with the request ID.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:         message,
		CorrelationID: logger.GetRequestID(r.Context()),
	})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgUnknownSeasonError  = "Unknown season"
	ErrMsgInvalidPeriodError  = "Invalid period selector"
	ErrMsgStoreUnavailableErr = "Entry store is temporarily unavailable. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Store failures surface as 503 so clients can distinguish
// transient unavailability from bad requests.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		// Safety net only: the profile handler intercepts this error and
		// serves a null profile before the mapping is ever consulted. Any
		// other call site that forgets the intercept gets a 404 here
		// instead of a generic 500.
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrUnknownSeason):
		return http.StatusBadRequest, ErrMsgUnknownSeasonError
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest, ErrMsgInvalidPeriodError
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgStoreUnavailableErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	status, message := mapServiceErrorToUserMessage(err)
	if status == http.StatusServiceUnavailable {
		metrics.StoreFailures.Inc()
	}

	log.Error(opName, "error", err, "status", status)
	respondError(w, r, status, message)
}
