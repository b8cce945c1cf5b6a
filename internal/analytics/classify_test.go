package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvanta/lockpulse/internal/domain"
)

func dayStat(username string, d time.Time, firstHour, lastHour int) domain.UserDayStat {
	return domain.UserDayStat{
		Username:   username,
		Day:        d,
		FirstEvent: time.Date(d.Year(), d.Month(), d.Day(), firstHour, 15, 0, 0, time.UTC),
		LastEvent:  time.Date(d.Year(), d.Month(), d.Day(), lastHour, 45, 0, 0, time.UTC),
	}
}

func TestClassifyDay(t *testing.T) {
	d := day(2026, time.January, 5)

	tests := []struct {
		name          string
		firstHour     int
		lastHour      int
		expectedEarly bool
		expectedLate  bool
	}{
		{"first event before early hour", 6, 10, true, false},
		{"first event exactly at early hour is not early", 8, 10, false, false},
		{"last event at late hour is late", 10, 22, false, true},
		{"last event after late hour is late", 10, 23, false, true},
		{"last event just before late hour", 10, 21, false, false},
		{"both early and late on one day", 5, 23, true, true},
		{"ordinary office hours", 9, 17, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			early, late := ClassifyDay(dayStat("alice", d, tt.firstHour, tt.lastHour), DefaultEarlyHour, DefaultLateHour, time.UTC)

			assert.Equal(t, tt.expectedEarly, early)
			assert.Equal(t, tt.expectedLate, late)
		})
	}
}

func TestClassifyDay_HoursInReferenceTimezone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 07:30 UTC is 08:30 in Berlin during winter, past the early threshold.
	s := domain.UserDayStat{
		Username:   "alice",
		Day:        day(2026, time.January, 5),
		FirstEvent: time.Date(2026, 1, 5, 7, 30, 0, 0, time.UTC),
		LastEvent:  time.Date(2026, 1, 5, 21, 30, 0, 0, time.UTC), // 22:30 Berlin
	}

	earlyUTC, lateUTC := ClassifyDay(s, DefaultEarlyHour, DefaultLateHour, time.UTC)
	assert.True(t, earlyUTC)
	assert.False(t, lateUTC)

	earlyBerlin, lateBerlin := ClassifyDay(s, DefaultEarlyHour, DefaultLateHour, berlin)
	assert.False(t, earlyBerlin)
	assert.True(t, lateBerlin)
}

func TestEarlyAndLateDayCounts(t *testing.T) {
	stats := []domain.UserDayStat{
		dayStat("alice", day(2026, time.January, 1), 6, 10),  // early
		dayStat("alice", day(2026, time.January, 2), 5, 23),  // early and late
		dayStat("alice", day(2026, time.January, 3), 9, 17),  // neither
		dayStat("bob", day(2026, time.January, 1), 10, 22),   // late
		dayStat("carol", day(2026, time.January, 1), 12, 14), // neither
	}

	early := EarlyDayCounts(stats, DefaultEarlyHour, DefaultLateHour, time.UTC)
	late := LateDayCounts(stats, DefaultEarlyHour, DefaultLateHour, time.UTC)

	assert.Equal(t, map[string]int{"alice": 2}, early)
	assert.Equal(t, map[string]int{"alice": 1, "bob": 1}, late)
}

func TestEarlyDayCounts_OneCreditPerDay(t *testing.T) {
	// Many qualifying events collapse into one pivot row, so the day is
	// credited exactly once no matter how often the user swiped.
	s := dayStat("alice", day(2026, time.January, 1), 5, 7)

	early := EarlyDayCounts([]domain.UserDayStat{s}, DefaultEarlyHour, DefaultLateHour, time.UTC)

	assert.Equal(t, 1, early["alice"])
}
