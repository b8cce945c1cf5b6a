package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidPage       = "Invalid page parameter"
	ErrMsgInvalidPeriod     = "Invalid period. Valid options: day, month, last7, last30, mtd, season"

	// Operation error messages
	ErrMsgGetDashboardFailed      = "Failed to assemble dashboard"
	ErrMsgGetLeaderboardsFailed   = "Failed to retrieve leaderboards"
	ErrMsgGetProfileFailed        = "Failed to retrieve user profile"
	ErrMsgGetSeasonProgressFailed = "Failed to retrieve season progress"
)
