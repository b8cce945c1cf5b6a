package analytics

import (
	"time"

	"github.com/kvanta/lockpulse/internal/domain"
)

// ClassifyDay labels one user-day. Early means the chronologically first
// event of the day falls strictly before earlyHour; late means any event
// falls at/after lateHour. Hours are taken in the reference timezone. A day
// is credited at most once per flag no matter how many events qualify.
//
// The pivot carries the first and last event instant of the user-day, which
// is sufficient: the first event decides "early", and some event is at/after
// lateHour iff the last one is.
func ClassifyDay(s domain.UserDayStat, earlyHour, lateHour int, loc *time.Location) (early, late bool) {
	early = s.FirstEvent.In(loc).Hour() < earlyHour
	late = s.LastEvent.In(loc).Hour() >= lateHour
	return early, late
}

// EarlyDayCounts sums early-day credits per user across the pivot.
func EarlyDayCounts(stats []domain.UserDayStat, earlyHour, lateHour int, loc *time.Location) map[string]int {
	counts := make(map[string]int)
	for _, s := range stats {
		if early, _ := ClassifyDay(s, earlyHour, lateHour, loc); early {
			counts[s.Username]++
		}
	}
	return counts
}

// LateDayCounts sums late-day credits per user across the pivot.
func LateDayCounts(stats []domain.UserDayStat, earlyHour, lateHour int, loc *time.Location) map[string]int {
	counts := make(map[string]int)
	for _, s := range stats {
		if _, late := ClassifyDay(s, earlyHour, lateHour, loc); late {
			counts[s.Username]++
		}
	}
	return counts
}
