package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgUserNotFound     = "user not found"
	ErrMsgUnknownSeason    = "unknown season"
	ErrMsgStoreUnavailable = "entry store unavailable"
	ErrMsgInvalidPeriod    = "invalid period"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrUserNotFound means no lifetime activity exists for the requested
	// username. Callers surface it as a null profile, not a failure.
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// ErrUnknownSeason means a season key did not resolve against the
	// catalog. Treated as "no season active" by the resolver.
	ErrUnknownSeason = errors.New(ErrMsgUnknownSeason)

	// ErrStoreUnavailable wraps any backing-store read failure. A single
	// failed sub-aggregation aborts the whole request; no partial payload
	// is ever returned.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// ErrInvalidPeriod marks an unsupported period selector.
	ErrInvalidPeriod = errors.New(ErrMsgInvalidPeriod)
)
