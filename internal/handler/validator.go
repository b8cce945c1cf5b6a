package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kvanta/lockpulse/internal/logger"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for period selectors
	_ = v.RegisterValidation("period", validatePeriod)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "period":
			errs[field] = "Invalid period"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// filterParams carries the free-text filter inputs subject to validation.
// The excludesall rule on username rejects SQL pattern metacharacters so a
// filter can never read as a wildcard, matching the exact-match contract.
type filterParams struct {
	Username string `validate:"omitempty,max=64,excludesall=%_"`
	LockID   string `validate:"omitempty,max=128"`
	Season   string `validate:"omitempty,max=64"`
}

// ValidationErrorResponse is the 400 payload for rejected filter inputs.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// validateFilterParams checks the free-text filter inputs. Returns false
// after writing a 400 response when any input is rejected.
func validateFilterParams(w http.ResponseWriter, r *http.Request, username, lockID, season string) bool {
	params := filterParams{Username: username, LockID: lockID, Season: season}
	if err := GetValidator().ValidateStruct(params); err != nil {
		logger.FromContext(r.Context()).Warn("Rejected filter parameters", "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// ValidPeriods defines the supported period selectors
var ValidPeriods = map[string]bool{
	"day":    true,
	"month":  true,
	"last7":  true,
	"last30": true,
	"mtd":    true,
	"season": true,
}

// Custom validation function for period selectors
func validatePeriod(fl validator.FieldLevel) bool {
	period := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if period == "" {
		return true
	}
	return ValidPeriods[strings.ToLower(period)]
}
