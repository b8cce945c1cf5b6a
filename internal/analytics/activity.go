package analytics

import (
	"sort"
	"time"

	"github.com/kvanta/lockpulse/internal/domain"
)

// DaysByUser projects the user-day pivot to, per username, the ascending
// deduplicated sequence of active calendar days. Day values are calendar
// dates as midnight UTC, so arithmetic on them is timezone-stable.
func DaysByUser(stats []domain.UserDayStat) map[string][]time.Time {
	byUser := make(map[string]map[time.Time]struct{})
	for _, s := range stats {
		days, ok := byUser[s.Username]
		if !ok {
			days = make(map[time.Time]struct{})
			byUser[s.Username] = days
		}
		days[s.Day] = struct{}{}
	}

	out := make(map[string][]time.Time, len(byUser))
	for user, set := range byUser {
		days := make([]time.Time, 0, len(set))
		for d := range set {
			days = append(days, d)
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
		out[user] = days
	}
	return out
}

// DistinctDayCounts returns, per username, the count of distinct calendar
// days with at least one qualifying event. Duplicate events on an already
// counted user-day never change the count.
func DistinctDayCounts(stats []domain.UserDayStat) map[string]int {
	counts := make(map[string]int)
	for user, days := range DaysByUser(stats) {
		counts[user] = len(days)
	}
	return counts
}

// UniqueUsers returns the number of distinct usernames in the pivot.
func UniqueUsers(stats []domain.UserDayStat) int {
	seen := make(map[string]struct{})
	for _, s := range stats {
		seen[s.Username] = struct{}{}
	}
	return len(seen)
}

// DistinctDaysWithin counts the days in an ascending day sequence that fall
// inside the window (inclusive).
func DistinctDaysWithin(days []time.Time, w domain.TimeWindow) int {
	n := 0
	for _, d := range days {
		if w.Contains(d) {
			n++
		}
	}
	return n
}
