package analytics

import (
	"github.com/kvanta/lockpulse/internal/domain"
)

// BuildRangeSummary assembles the aggregate summary for one filter+window.
// userMetric is raw entry counts for day-period requests and distinct
// active days (primary lock) otherwise, matching leaderboard semantics.
// lockCounts and hourCounts are only supplied for day-period requests.
func BuildRangeSummary(total int, uniqueUsers int, userMetric map[string]int, lockCounts map[string]int, hourCounts map[int]int, span domain.TimeSpan) domain.RangeSummary {
	summary := domain.RangeSummary{
		TotalEntries:   total,
		UniqueUsers:    uniqueUsers,
		MostActiveUser: TopEntry(userMetric),
		FirstEntryTime: span.First,
		LastEntryTime:  span.Last,
	}
	if lockCounts != nil {
		summary.MostUsedLock = TopEntry(lockCounts)
	}
	if hourCounts != nil {
		summary.BusiestHour = BusiestHour(hourCounts)
	}
	return summary
}
