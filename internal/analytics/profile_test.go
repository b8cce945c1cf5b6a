package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvanta/lockpulse/internal/domain"
)

func achievementKeys(profile *domain.UserProfile) []string {
	keys := make([]string, 0, len(profile.Achievements))
	for _, a := range profile.Achievements {
		keys = append(keys, a.Key)
	}
	return keys
}

func TestBuildUserProfile(t *testing.T) {
	first := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	last := time.Date(2026, 1, 12, 18, 0, 0, 0, time.UTC)
	span := domain.TimeSpan{First: &first, Last: &last}
	recentWindow := domain.TimeWindow{
		Start: day(2026, time.January, 1),
		End:   day(2026, time.January, 30),
	}

	t.Run("aggregates and display name", func(t *testing.T) {
		stats := []domain.UserDayStat{
			dayStat("alice", day(2026, time.January, 10), 9, 17),
			dayStat("alice", day(2026, time.January, 11), 9, 17),
			dayStat("alice", day(2026, time.January, 12), 9, 17),
			dayStat("bob", day(2026, time.January, 10), 9, 17), // other users ignored
		}

		profile := BuildUserProfile("alice", stats, 2, span, recentWindow, DefaultEarlyHour, DefaultLateHour, time.UTC)

		assert.Equal(t, "alice", profile.Username)
		assert.Equal(t, "Alice", profile.DisplayUsername)
		assert.Equal(t, 3, profile.TotalVisits)
		assert.Equal(t, 2, profile.UniqueLocksVisited)
		assert.Equal(t, 3, profile.LongestStreakDays)
		assert.Equal(t, &first, profile.FirstSeen)
		assert.Equal(t, &last, profile.LastSeen)
	})

	t.Run("no badges below every threshold", func(t *testing.T) {
		stats := []domain.UserDayStat{
			dayStat("alice", day(2026, time.January, 10), 9, 17),
		}

		profile := BuildUserProfile("alice", stats, 1, span, recentWindow, DefaultEarlyHour, DefaultLateHour, time.UTC)

		assert.Empty(t, profile.Achievements)
		assert.NotNil(t, profile.Achievements, "serializes as [] rather than null")
	})

	t.Run("early bird and night owl badges", func(t *testing.T) {
		stats := []domain.UserDayStat{
			dayStat("alice", day(2026, time.January, 10), 6, 17),
			dayStat("alice", day(2026, time.January, 11), 9, 23),
		}

		profile := BuildUserProfile("alice", stats, 1, span, recentWindow, DefaultEarlyHour, DefaultLateHour, time.UTC)

		keys := achievementKeys(profile)
		assert.Contains(t, keys, "early_bird")
		assert.Contains(t, keys, "night_owl")
	})

	t.Run("visit badges stack", func(t *testing.T) {
		stats := make([]domain.UserDayStat, 0, 50)
		for i := 0; i < 50; i++ {
			stats = append(stats, dayStat("alice", day(2026, time.January, 1).AddDate(0, 0, i*2), 9, 17))
		}

		profile := BuildUserProfile("alice", stats, 1, span, recentWindow, DefaultEarlyHour, DefaultLateHour, time.UTC)

		keys := achievementKeys(profile)
		assert.Contains(t, keys, "visits_10")
		assert.Contains(t, keys, "visits_50")
		assert.NotContains(t, keys, "visits_100")
	})

	t.Run("active month badge needs enough recent days", func(t *testing.T) {
		stats := make([]domain.UserDayStat, 0, ActiveMonthMinDays)
		for i := 0; i < ActiveMonthMinDays; i++ {
			stats = append(stats, dayStat("alice", day(2026, time.January, 10+i), 9, 17))
		}

		profile := BuildUserProfile("alice", stats, 1, span, recentWindow, DefaultEarlyHour, DefaultLateHour, time.UTC)
		assert.Contains(t, achievementKeys(profile), "active_month")

		// Same activity outside the trailing window earns nothing.
		stale := domain.TimeWindow{
			Start: day(2026, time.March, 1),
			End:   day(2026, time.March, 30),
		}
		profile = BuildUserProfile("alice", stats, 1, span, stale, DefaultEarlyHour, DefaultLateHour, time.UTC)
		assert.NotContains(t, achievementKeys(profile), "active_month")
	})

	t.Run("badge evaluation is idempotent", func(t *testing.T) {
		stats := []domain.UserDayStat{
			dayStat("alice", day(2026, time.January, 10), 6, 23),
		}

		first := BuildUserProfile("alice", stats, 1, span, recentWindow, DefaultEarlyHour, DefaultLateHour, time.UTC)
		second := BuildUserProfile("alice", stats, 1, span, recentWindow, DefaultEarlyHour, DefaultLateHour, time.UTC)

		require.Equal(t, first, second)
	})
}
