package domain

import "time"

// PeriodKind identifies the time-range semantics of a dashboard request.
type PeriodKind string

const (
	PeriodDay    PeriodKind = "day"
	PeriodMonth  PeriodKind = "month"
	PeriodLast7  PeriodKind = "last7"
	PeriodLast30 PeriodKind = "last30"
	PeriodMTD    PeriodKind = "mtd"
	PeriodSeason PeriodKind = "season"
)

// DistinctDayBased reports whether leaderboards for this period rank by
// distinct active days rather than raw entry counts.
func (p PeriodKind) DistinctDayBased() bool {
	return p != PeriodDay
}

// TimeWindow is a concrete [start, end] instant range derived per request.
// Invariant: Start <= End.
type TimeWindow struct {
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
	PeriodKind PeriodKind `json:"period_kind"`
}

// Contains reports whether t falls inside the window (inclusive bounds).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// StreakResult holds the longest and most recent consecutive-day runs for one
// entity. Current is the run ending at the last active day in the analyzed
// set, not necessarily extending to today.
type StreakResult struct {
	Longest int `json:"longest"`
	Current int `json:"current"`
}

// LeaderboardEntry is one ranked row: descending by count, ties broken by
// ascending identifier for determinism.
type LeaderboardEntry struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// LeaderboardSet groups the ranked categories computed for one scope.
// TopLocks is only populated for day-period scopes.
type LeaderboardSet struct {
	TopUsers          []LeaderboardEntry `json:"top_users"`
	TopLocks          []LeaderboardEntry `json:"top_locks,omitempty"`
	TopEarlyBirds     []LeaderboardEntry `json:"top_early_birds"`
	TopNightOwls      []LeaderboardEntry `json:"top_night_owls"`
	TopLongestStreaks []LeaderboardEntry `json:"top_longest_streaks"`
}

// HourCount is a busiest-hour aggregate (hour in the reference timezone).
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// RangeSummary is the aggregate summary for the current filter and window.
// MostUsedLock and BusiestHour are only computed for day-period requests.
type RangeSummary struct {
	TotalEntries   int               `json:"total_entries"`
	UniqueUsers    int               `json:"unique_users"`
	MostActiveUser *LeaderboardEntry `json:"most_active_user"`
	MostUsedLock   *LeaderboardEntry `json:"most_used_lock,omitempty"`
	BusiestHour    *HourCount        `json:"busiest_hour,omitempty"`
	FirstEntryTime *time.Time        `json:"first_entry_time"`
	LastEntryTime  *time.Time        `json:"last_entry_time"`
}

// MonthCohort splits the distinct users active in one calendar month into new
// (lifetime-first month equals this month) and returning users.
type MonthCohort struct {
	Month     string `json:"month"`
	New       int    `json:"new"`
	Returning int    `json:"returning"`
	Total     int    `json:"total"`
}

// ActivityCharts carries the chart-oriented aggregates of a dashboard payload.
// Map keys: days are "2006-01-02", weeks "2006-W01", months "2006-01", hours 0-23.
type ActivityCharts struct {
	EntriesPerDay    map[string]int `json:"entries_per_day"`
	EntriesPerHour   map[int]int    `json:"entries_per_hour"`
	DAUPerDay        map[string]int `json:"dau_per_day"`
	DAUPerHour       map[int]int    `json:"dau_per_hour"`
	WAUByWeek        map[string]int `json:"wau_by_week"`
	MAUByMonth       map[string]int `json:"mau_by_month"`
	RetentionBuckets map[string]int `json:"retention_buckets"`
	StreakBuckets    map[string]int `json:"streak_buckets"`
	CohortByMonth    []MonthCohort  `json:"cohort_by_month"`
}

// DateCount is an entry count for a single calendar date, used for
// previous/next day navigation on day-period dashboards.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// FilterOptions describes the filter state echoed back with a dashboard
// payload plus the data needed to render filter controls.
type FilterOptions struct {
	AvailableLockIDs   []string       `json:"available_lock_ids"`
	EntryCounts        map[string]int `json:"entry_counts"`
	Date               string         `json:"date"`
	PreviousDateCounts *DateCount     `json:"previous_date_counts"`
	NextDateCounts     *DateCount     `json:"next_date_counts"`
	Period             PeriodKind     `json:"period"`
	Seasons            []Season       `json:"seasons"`
	Season             *Season        `json:"season"`
}

// DashboardPayload is the single response object assembled per analytics
// request. All aggregates inside it were computed against the same filter and
// window.
type DashboardPayload struct {
	Entries            []Entry         `json:"entries"`
	Pagination         Pagination      `json:"pagination"`
	Filters            FilterOptions   `json:"filters"`
	DayAggregates      RangeSummary    `json:"day_aggregates"`
	Leaderboards       LeaderboardSet  `json:"leaderboards"`
	GlobalLeaderboards LeaderboardSet  `json:"global_leaderboards"`
	UserProfile        *UserProfile    `json:"user_profile"`
	UserSeasonProgress *SeasonProgress `json:"user_season_progress"`
	Analytics          ActivityCharts  `json:"analytics"`
}
