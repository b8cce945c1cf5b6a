package analytics

import (
	"time"

	"github.com/kvanta/lockpulse/internal/domain"
)

// CalcStreak computes the longest and most recent consecutive-day runs from
// an ascending, deduplicated sequence of calendar days. Current is the run
// ending at the last day in the sequence; it is not checked against today.
// Empty input yields {0, 0}.
func CalcStreak(days []time.Time) domain.StreakResult {
	if len(days) == 0 {
		return domain.StreakResult{}
	}

	best := 1
	run := 1
	last := days[0]
	for _, d := range days[1:] {
		if dayDiff(last, d) == 1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		last = d
	}

	return domain.StreakResult{Longest: best, Current: run}
}

// LongestStreaks computes the longest streak per user from the day pivot.
func LongestStreaks(daysByUser map[string][]time.Time) map[string]int {
	out := make(map[string]int, len(daysByUser))
	for user, days := range daysByUser {
		out[user] = CalcStreak(days).Longest
	}
	return out
}

// dayDiff returns the whole-day difference between two calendar-day values.
// Days are midnight-UTC date labels, so the division is exact and immune to
// DST transitions in the reference timezone.
func dayDiff(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
