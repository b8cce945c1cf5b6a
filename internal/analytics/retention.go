package analytics

import (
	"sort"
	"strconv"

	"github.com/kvanta/lockpulse/internal/domain"
)

// streakBucketLabels are the longest-streak distribution buckets, in display
// order. Bounds are inclusive.
var streakBucketLabels = []struct {
	label    string
	min, max int
}{
	{"1", 1, 1},
	{"2-3", 2, 3},
	{"4-7", 4, 7},
	{"8-15", 8, 15},
	{"16+", 16, 1<<31 - 1},
}

// RetentionBuckets buckets users by their distinct-active-day count within
// the analyzed set: buckets "1".."19" individually plus "20+" as overflow.
// Every bucket is present in the output, zero-filled when empty, so the
// bucket values always sum to the number of qualifying users.
func RetentionBuckets(dayCounts map[string]int) map[string]int {
	buckets := make(map[string]int, RetentionMaxBucket+1)
	for i := 1; i <= RetentionMaxBucket; i++ {
		buckets[strconv.Itoa(i)] = 0
	}
	buckets[RetentionOverflowBucket] = 0

	for _, days := range dayCounts {
		if days <= 0 {
			continue
		}
		if days > RetentionMaxBucket {
			buckets[RetentionOverflowBucket]++
		} else {
			buckets[strconv.Itoa(days)]++
		}
	}
	return buckets
}

// StreakBuckets buckets users by their longest streak within the analyzed
// set, zero-filled like RetentionBuckets.
func StreakBuckets(longestByUser map[string]int) map[string]int {
	buckets := make(map[string]int, len(streakBucketLabels))
	for _, b := range streakBucketLabels {
		buckets[b.label] = 0
	}

	for _, streak := range longestByUser {
		for _, b := range streakBucketLabels {
			if streak >= b.min && streak <= b.max {
				buckets[b.label]++
				break
			}
		}
	}
	return buckets
}

// MonthCohorts splits, for each calendar month present in the windowed
// pivot, the distinct users active that month into new (lifetime-first
// month equals this month) and returning. firstMonths maps username to the
// lifetime-first active month, independent of the current window.
func MonthCohorts(stats []domain.UserDayStat, firstMonths map[string]string) []domain.MonthCohort {
	usersByMonth := make(map[string]map[string]struct{})
	for _, s := range stats {
		month := s.Day.Format(MonthKeyFormat)
		users, ok := usersByMonth[month]
		if !ok {
			users = make(map[string]struct{})
			usersByMonth[month] = users
		}
		users[s.Username] = struct{}{}
	}

	months := make([]string, 0, len(usersByMonth))
	for month := range usersByMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	cohorts := make([]domain.MonthCohort, 0, len(months))
	for _, month := range months {
		cohort := domain.MonthCohort{Month: month}
		for user := range usersByMonth[month] {
			cohort.Total++
			if firstMonths[user] == month {
				cohort.New++
			} else {
				cohort.Returning++
			}
		}
		cohorts = append(cohorts, cohort)
	}
	return cohorts
}
