package domain

import "time"

// Season is an administrator-defined fixed date range with its own
// leaderboard and progress scope. An active season overrides the derived
// time window and forces distinct-day aggregation semantics.
type Season struct {
	Key     string    `json:"key"`
	Name    string    `json:"name"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// Window returns the season's fixed time window.
func (s Season) Window() TimeWindow {
	return TimeWindow{Start: s.StartAt, End: s.EndAt, PeriodKind: PeriodSeason}
}

// SeasonProgress is a user's standing within one season: points are distinct
// active days on the primary lock inside the season window.
type SeasonProgress struct {
	SeasonKey         string `json:"season_key"`
	Username          string `json:"username"`
	Points            int    `json:"points"`
	Rank              int    `json:"rank"`
	CurrentStreakDays int    `json:"current_streak_days"`
	LongestStreakDays int    `json:"longest_streak_days"`
	Level             int    `json:"level"`
	NextLevelAt       *int   `json:"next_level_at"`
}
