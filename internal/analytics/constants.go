package analytics

// ============================================================================
// Defaults
// ============================================================================

// DefaultLeaderboardLimit is the number of rows returned per leaderboard
// category when the caller does not specify a limit
const DefaultLeaderboardLimit = 5

// DefaultEarlyHour is the hour threshold before which a user-day's first
// event marks the day as "early"
const DefaultEarlyHour = 8

// DefaultLateHour is the hour threshold at/after which any event marks the
// day as "late"
const DefaultLateHour = 22

// DefaultPageLimit is the default entry page size for dashboard requests
const DefaultPageLimit = 50

// MaxPageLimit caps the entry page size
const MaxPageLimit = 500

// ============================================================================
// Windows
// ============================================================================

// Rolling window day spans (inclusive of today)
const (
	Last7Days  = 7
	Last30Days = 30
)

// ActiveMonthWindowDays is the trailing window checked by the
// "active this month" achievement
const ActiveMonthWindowDays = 30

// ActiveMonthMinDays is the distinct-day floor for the
// "active this month" achievement
const ActiveMonthMinDays = 5

// ============================================================================
// Key formats (reference-timezone calendar labels)
// ============================================================================

const (
	DayKeyFormat   = "2006-01-02"
	MonthKeyFormat = "2006-01"
)

// ============================================================================
// Retention buckets
// ============================================================================

// RetentionMaxBucket is the highest individual distinct-day bucket; larger
// counts fall into the overflow bucket
const RetentionMaxBucket = 19

// RetentionOverflowBucket labels the 20+ distinct-day bucket
const RetentionOverflowBucket = "20+"

// ============================================================================
// Season levels
// ============================================================================

// SeasonLevelThresholds are the cumulative point floors for levels 1..5
var SeasonLevelThresholds = []int{1, 5, 10, 20, 30}

// ============================================================================
// Achievement thresholds
// ============================================================================

// VisitAchievementThresholds are the lifetime distinct-day floors for the
// visit-count badges, in ascending order
var VisitAchievementThresholds = []int{10, 50, 100}

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgListEntriesFailed       = "failed to list entries: %w"
	ErrMsgCountEntriesFailed      = "failed to count entries: %w"
	ErrMsgDistinctLocksFailed     = "failed to get distinct locks: %w"
	ErrMsgCountByLockFailed       = "failed to count entries by lock: %w"
	ErrMsgCountByUserFailed       = "failed to count entries by user: %w"
	ErrMsgCountByDayFailed        = "failed to count entries by day: %w"
	ErrMsgCountByHourFailed       = "failed to count entries by hour: %w"
	ErrMsgDistinctUsersHourFailed = "failed to count distinct users by hour: %w"
	ErrMsgUserDayStatsFailed      = "failed to get user-day stats: %w"
	ErrMsgTimeSpanFailed          = "failed to get time span: %w"
	ErrMsgFirstActiveMonthsFailed = "failed to get first active months: %w"
	ErrMsgLoadSeasonCatalogFailed = "failed to load season catalog: %w"
	ErrMsgUsernameRequired        = "username is required"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDashboardAssembled     = "Dashboard payload assembled"
	LogMsgProfileComputed        = "User profile computed"
	LogMsgSeasonProgressComputed = "Season progress computed"
	LogMsgLeaderboardsComputed   = "Leaderboards computed"
	LogMsgSeasonCatalogLoaded    = "Season catalog loaded"
	LogMsgInvalidDateInput       = "Invalid date input, falling back to now"
)
