package repository

import (
	"context"
	"time"

	"github.com/kvanta/lockpulse/internal/domain"
)

// Entry defines the read-only interface over the append-only entry log.
// Implementations must compute every calendar-day and hour grouping in the
// configured reference timezone; mixing UTC and local boundaries silently
// corrupts streaks and leaderboards. Usernames in grouped results are
// normalized to lowercase, matching the case-insensitive filter predicate.
type Entry interface {
	// List returns a page of entries ordered by entry_time descending with
	// id descending as tie-break, so pagination and first/last-of-day
	// selection are stable for entries sharing a timestamp.
	List(ctx context.Context, filter domain.EntryFilter, limit, offset int) ([]domain.Entry, error)

	// Count returns the number of entries matching the filter.
	Count(ctx context.Context, filter domain.EntryFilter) (int, error)

	// DistinctLockIDs returns every lock identifier seen in the log.
	DistinctLockIDs(ctx context.Context) ([]string, error)

	// CountByLock returns entry counts grouped by lock within the filter.
	CountByLock(ctx context.Context, filter domain.EntryFilter) (map[string]int, error)

	// CountByUser returns entry counts grouped by username within the filter.
	CountByUser(ctx context.Context, filter domain.EntryFilter) (map[string]int, error)

	// CountByDay returns entry counts grouped by calendar day ("2006-01-02").
	CountByDay(ctx context.Context, filter domain.EntryFilter) (map[string]int, error)

	// CountByHour returns entry counts grouped by hour of day (0-23).
	CountByHour(ctx context.Context, filter domain.EntryFilter) (map[int]int, error)

	// DistinctUsersByHour returns distinct active user counts per hour of day.
	DistinctUsersByHour(ctx context.Context, filter domain.EntryFilter) (map[int]int, error)

	// UserDayStats returns the user-day pivot: one row per (username,
	// calendar day) with the first and last event instant of that user-day.
	UserDayStats(ctx context.Context, filter domain.EntryFilter) ([]domain.UserDayStat, error)

	// TimeSpan returns the earliest and latest entry instants in the
	// filtered set, or nil values when the set is empty.
	TimeSpan(ctx context.Context, filter domain.EntryFilter) (domain.TimeSpan, error)

	// FirstActiveMonths returns, per username, the lifetime-first calendar
	// month ("2006-01") of activity on the given lock, independent of any
	// request window.
	FirstActiveMonths(ctx context.Context, lockID string) (map[string]string, error)
}

// Clock abstracts "now" so window resolution is deterministic in tests.
type Clock func() time.Time
