package domain

import "time"

// Achievement is a badge derived from a user's lifetime activity.
type Achievement struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UserProfile holds lifetime statistics for one username. TotalVisits and
// LongestStreakDays are scoped to the primary lock to avoid double-counting
// presence across sensors covering the same space.
type UserProfile struct {
	Username           string        `json:"username"`
	DisplayUsername    string        `json:"display_username"`
	TotalVisits        int           `json:"total_visits"`
	UniqueLocksVisited int           `json:"unique_locks_visited"`
	FirstSeen          *time.Time    `json:"first_seen"`
	LastSeen           *time.Time    `json:"last_seen"`
	LongestStreakDays  int           `json:"longest_streak_days"`
	Achievements       []Achievement `json:"achievements"`
}
