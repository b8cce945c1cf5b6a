package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvanta/lockpulse/internal/domain"
)

func TestResolveWindow(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	now := time.Date(2026, 3, 15, 14, 30, 0, 0, berlin)

	tests := []struct {
		name          string
		period        domain.PeriodKind
		date          string
		expectedStart time.Time
		expectedEnd   time.Time
		expectedKind  domain.PeriodKind
	}{
		{
			name:          "day with explicit date",
			period:        domain.PeriodDay,
			date:          "2026-01-10",
			expectedStart: time.Date(2026, 1, 10, 0, 0, 0, 0, berlin),
			expectedEnd:   time.Date(2026, 1, 11, 0, 0, 0, 0, berlin).Add(-time.Nanosecond),
			expectedKind:  domain.PeriodDay,
		},
		{
			name:          "day without date uses now",
			period:        domain.PeriodDay,
			expectedStart: time.Date(2026, 3, 15, 0, 0, 0, 0, berlin),
			expectedEnd:   time.Date(2026, 3, 16, 0, 0, 0, 0, berlin).Add(-time.Nanosecond),
			expectedKind:  domain.PeriodDay,
		},
		{
			name:          "month from month key",
			period:        domain.PeriodMonth,
			date:          "2026-02",
			expectedStart: time.Date(2026, 2, 1, 0, 0, 0, 0, berlin),
			expectedEnd:   time.Date(2026, 3, 1, 0, 0, 0, 0, berlin).Add(-time.Nanosecond),
			expectedKind:  domain.PeriodMonth,
		},
		{
			name:          "last7 spans 7 calendar days ending today",
			period:        domain.PeriodLast7,
			expectedStart: time.Date(2026, 3, 9, 0, 0, 0, 0, berlin),
			expectedEnd:   time.Date(2026, 3, 16, 0, 0, 0, 0, berlin).Add(-time.Nanosecond),
			expectedKind:  domain.PeriodLast7,
		},
		{
			name:          "last30 spans 30 calendar days ending today",
			period:        domain.PeriodLast30,
			expectedStart: time.Date(2026, 2, 14, 0, 0, 0, 0, berlin),
			expectedEnd:   time.Date(2026, 3, 16, 0, 0, 0, 0, berlin).Add(-time.Nanosecond),
			expectedKind:  domain.PeriodLast30,
		},
		{
			name:          "mtd runs from month start to end of today",
			period:        domain.PeriodMTD,
			expectedStart: time.Date(2026, 3, 1, 0, 0, 0, 0, berlin),
			expectedEnd:   time.Date(2026, 3, 16, 0, 0, 0, 0, berlin).Add(-time.Nanosecond),
			expectedKind:  domain.PeriodMTD,
		},
		{
			name:          "unknown period degrades to day",
			period:        domain.PeriodKind("fortnight"),
			expectedStart: time.Date(2026, 3, 15, 0, 0, 0, 0, berlin),
			expectedEnd:   time.Date(2026, 3, 16, 0, 0, 0, 0, berlin).Add(-time.Nanosecond),
			expectedKind:  domain.PeriodDay,
		},
		{
			name:          "malformed date falls back to now",
			period:        domain.PeriodDay,
			date:          "not-a-date",
			expectedStart: time.Date(2026, 3, 15, 0, 0, 0, 0, berlin),
			expectedEnd:   time.Date(2026, 3, 16, 0, 0, 0, 0, berlin).Add(-time.Nanosecond),
			expectedKind:  domain.PeriodDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ResolveWindow(tt.period, tt.date, nil, now, berlin)

			assert.True(t, window.Start.Equal(tt.expectedStart), "start: got %v want %v", window.Start, tt.expectedStart)
			assert.True(t, window.End.Equal(tt.expectedEnd), "end: got %v want %v", window.End, tt.expectedEnd)
			assert.Equal(t, tt.expectedKind, window.PeriodKind)
			assert.False(t, window.End.Before(window.Start), "window must not be inverted")
		})
	}

	t.Run("season overrides period and date", func(t *testing.T) {
		season := &domain.Season{
			Key:     "spring-2026",
			StartAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2026, 5, 31, 23, 59, 59, 0, time.UTC),
		}

		window := ResolveWindow(domain.PeriodDay, "2026-01-10", season, now, berlin)

		assert.True(t, window.Start.Equal(season.StartAt))
		assert.True(t, window.End.Equal(season.EndAt))
		assert.Equal(t, domain.PeriodSeason, window.PeriodKind)
	})

	t.Run("rfc3339 date is accepted as reference", func(t *testing.T) {
		window := ResolveWindow(domain.PeriodDay, "2026-01-10T22:30:00Z", nil, now, berlin)

		// 22:30 UTC is 23:30 in Berlin, still Jan 10.
		assert.True(t, window.Start.Equal(time.Date(2026, 1, 10, 0, 0, 0, 0, berlin)))
	})

	t.Run("day boundaries follow the reference timezone across DST", func(t *testing.T) {
		// DST starts in Berlin on 2026-03-29; the day is 23 hours long.
		window := ResolveWindow(domain.PeriodDay, "2026-03-29", nil, now, berlin)

		assert.Equal(t, 23*time.Hour-time.Nanosecond, window.End.Sub(window.Start))
	})
}
