package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kvanta/lockpulse/internal/domain"
	"github.com/kvanta/lockpulse/internal/logger"
)

// GetQueryParam retrieves and validates a required query parameter from the
// request. If the parameter is missing or empty, it writes an error response
// and returns false; the handler should return without writing anything else.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, r, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back
// to defaultValue when it is absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getIntQueryParam parses an optional positive integer query parameter.
// Returns ok=false after writing a 400 response when the value is malformed.
func getIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int, errMsg string) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid integer query parameter", "param", paramName, "value", raw)
		respondError(w, r, http.StatusBadRequest, errMsg)
		return 0, false
	}
	return n, true
}

// getPeriodQueryParam parses the period selector, defaulting to day.
// Returns ok=false after writing a 400 response for unknown selectors.
func getPeriodQueryParam(r *http.Request, w http.ResponseWriter) (domain.PeriodKind, bool) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		return domain.PeriodDay, true
	}
	normalized := strings.ToLower(raw)
	if !ValidPeriods[normalized] {
		logger.FromContext(r.Context()).Warn("Invalid period query parameter", "period", raw)
		respondError(w, r, http.StatusBadRequest, ErrMsgInvalidPeriod)
		return "", false
	}
	return domain.PeriodKind(normalized), true
}

// BuildQueryString renders a filter map as a canonical query string. Nil and
// empty values are dropped; keys are emitted in sorted order and spaces
// encode as '+'.
func BuildQueryString(params map[string]interface{}) string {
	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		s := fmt.Sprintf("%v", value)
		if s == "" {
			continue
		}
		values.Set(key, s)
	}
	return values.Encode()
}
