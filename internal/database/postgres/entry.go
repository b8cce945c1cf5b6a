package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kvanta/lockpulse/internal/domain"
	"github.com/kvanta/lockpulse/internal/repository"
)

// entryRepository implements the entry log repository for PostgreSQL. All
// calendar-day and hour groupings are computed with AT TIME ZONE against the
// configured reference timezone so day boundaries match the analytics core.
// Usernames in grouped results are normalized to lowercase, matching the
// case-insensitive filter predicate.
type entryRepository struct {
	db *pgxpool.Pool
	tz string
}

// NewEntryRepository creates a new PostgreSQL entry repository. tz is the
// IANA name of the reference timezone.
func NewEntryRepository(db *pgxpool.Pool, tz string) repository.Entry {
	return &entryRepository{db: db, tz: tz}
}

// buildWhere renders the canonical predicate for a filter. The timezone
// parameter is always $1; filter conditions follow. Username matching is
// case-insensitive exact equality, so no pattern syntax is ever interpreted.
func buildWhere(filter domain.EntryFilter, args *[]interface{}) string {
	var b strings.Builder
	b.WriteString(" WHERE 1=1")

	if filter.Start != nil {
		*args = append(*args, *filter.Start)
		fmt.Fprintf(&b, " AND entry_time >= $%d", len(*args))
	}
	if filter.End != nil {
		*args = append(*args, *filter.End)
		fmt.Fprintf(&b, " AND entry_time <= $%d", len(*args))
	}
	if filter.LockID != "" {
		*args = append(*args, filter.LockID)
		fmt.Fprintf(&b, " AND lock_id = $%d", len(*args))
	}
	if filter.Username != "" {
		*args = append(*args, filter.Username)
		fmt.Fprintf(&b, " AND lower(username) = lower($%d)", len(*args))
	}
	return b.String()
}

// storeErr tags a failed read so callers can recognize store unavailability
// while keeping the underlying driver error in the chain.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStoreUnavailable, err))
}

// List returns a page of entries ordered by entry_time descending, id
// descending as tie-break for entries sharing a timestamp.
func (r *entryRepository) List(ctx context.Context, filter domain.EntryFilter, limit, offset int) ([]domain.Entry, error) {
	args := []interface{}{}
	query := `
		SELECT id, username, lock_id, entry_time, lock_mac, record_type, electric_quantity
		FROM entries` + buildWhere(filter, &args)

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY entry_time DESC, id DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("failed to query entries", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Count returns the number of entries matching the filter.
func (r *entryRepository) Count(ctx context.Context, filter domain.EntryFilter) (int, error) {
	args := []interface{}{}
	query := `SELECT COUNT(*) FROM entries` + buildWhere(filter, &args)

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, storeErr("failed to count entries", err)
	}
	return count, nil
}

// DistinctLockIDs returns every lock identifier seen in the log.
func (r *entryRepository) DistinctLockIDs(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT lock_id FROM entries ORDER BY lock_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storeErr("failed to query distinct locks", err)
	}
	defer rows.Close()

	var locks []string
	for rows.Next() {
		var lock string
		if err := rows.Scan(&lock); err != nil {
			return nil, storeErr("failed to scan lock id", err)
		}
		locks = append(locks, lock)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read distinct locks", err)
	}
	return locks, nil
}

// CountByLock returns entry counts grouped by lock within the filter.
func (r *entryRepository) CountByLock(ctx context.Context, filter domain.EntryFilter) (map[string]int, error) {
	args := []interface{}{}
	query := `SELECT lock_id, COUNT(*) FROM entries` + buildWhere(filter, &args) + ` GROUP BY lock_id`
	return r.stringCounts(ctx, query, args, "failed to count entries by lock")
}

// CountByUser returns entry counts grouped by username within the filter.
func (r *entryRepository) CountByUser(ctx context.Context, filter domain.EntryFilter) (map[string]int, error) {
	args := []interface{}{}
	query := `SELECT lower(username), COUNT(*) FROM entries` + buildWhere(filter, &args) + ` GROUP BY lower(username)`
	return r.stringCounts(ctx, query, args, "failed to count entries by user")
}

// CountByDay returns entry counts grouped by reference-timezone calendar day.
func (r *entryRepository) CountByDay(ctx context.Context, filter domain.EntryFilter) (map[string]int, error) {
	args := []interface{}{r.tz}
	query := `
		SELECT to_char(entry_time AT TIME ZONE $1, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM entries` + buildWhere(filter, &args) + `
		GROUP BY day`
	return r.stringCounts(ctx, query, args, "failed to count entries by day")
}

// CountByHour returns entry counts grouped by reference-timezone hour of day.
func (r *entryRepository) CountByHour(ctx context.Context, filter domain.EntryFilter) (map[int]int, error) {
	args := []interface{}{r.tz}
	query := `
		SELECT EXTRACT(HOUR FROM entry_time AT TIME ZONE $1)::int AS hour, COUNT(*)
		FROM entries` + buildWhere(filter, &args) + `
		GROUP BY hour`
	return r.intCounts(ctx, query, args, "failed to count entries by hour")
}

// DistinctUsersByHour returns distinct active user counts per hour of day.
func (r *entryRepository) DistinctUsersByHour(ctx context.Context, filter domain.EntryFilter) (map[int]int, error) {
	args := []interface{}{r.tz}
	query := `
		SELECT EXTRACT(HOUR FROM entry_time AT TIME ZONE $1)::int AS hour, COUNT(DISTINCT lower(username))
		FROM entries` + buildWhere(filter, &args) + `
		GROUP BY hour`
	return r.intCounts(ctx, query, args, "failed to count distinct users by hour")
}

// UserDayStats returns the user-day pivot: one row per (username, calendar
// day) with the first and last event instant of that user-day.
func (r *entryRepository) UserDayStats(ctx context.Context, filter domain.EntryFilter) ([]domain.UserDayStat, error) {
	args := []interface{}{r.tz}
	query := `
		SELECT lower(username) AS uname, (entry_time AT TIME ZONE $1)::date AS day,
		       MIN(entry_time) AS first_event, MAX(entry_time) AS last_event
		FROM entries` + buildWhere(filter, &args) + `
		GROUP BY uname, day
		ORDER BY uname, day`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("failed to query user-day stats", err)
	}
	defer rows.Close()

	var stats []domain.UserDayStat
	for rows.Next() {
		var s domain.UserDayStat
		var day pgtype.Date
		if err := rows.Scan(&s.Username, &day, &s.FirstEvent, &s.LastEvent); err != nil {
			return nil, storeErr("failed to scan user-day stat", err)
		}
		s.Day = day.Time
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read user-day stats", err)
	}
	return stats, nil
}

// TimeSpan returns the earliest and latest entry instants in the filtered set.
func (r *entryRepository) TimeSpan(ctx context.Context, filter domain.EntryFilter) (domain.TimeSpan, error) {
	args := []interface{}{}
	query := `SELECT MIN(entry_time), MAX(entry_time) FROM entries` + buildWhere(filter, &args)

	var first, last pgtype.Timestamptz
	if err := r.db.QueryRow(ctx, query, args...).Scan(&first, &last); err != nil {
		return domain.TimeSpan{}, storeErr("failed to query time span", err)
	}

	span := domain.TimeSpan{}
	if first.Valid {
		t := first.Time
		span.First = &t
	}
	if last.Valid {
		t := last.Time
		span.Last = &t
	}
	return span, nil
}

// FirstActiveMonths returns the lifetime-first active calendar month per
// username on one lock, independent of any request window.
func (r *entryRepository) FirstActiveMonths(ctx context.Context, lockID string) (map[string]string, error) {
	query := `
		SELECT lower(username), to_char(MIN(entry_time AT TIME ZONE $1), 'YYYY-MM')
		FROM entries
		WHERE lock_id = $2
		GROUP BY lower(username)`

	rows, err := r.db.Query(ctx, query, r.tz, lockID)
	if err != nil {
		return nil, storeErr("failed to query first active months", err)
	}
	defer rows.Close()

	months := make(map[string]string)
	for rows.Next() {
		var username, month string
		if err := rows.Scan(&username, &month); err != nil {
			return nil, storeErr("failed to scan first active month", err)
		}
		months[username] = month
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read first active months", err)
	}
	return months, nil
}

// stringCounts runs a two-column (text, count) grouping query.
func (r *entryRepository) stringCounts(ctx context.Context, query string, args []interface{}, failMsg string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(failMsg, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, storeErr(failMsg, err)
		}
		counts[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(failMsg, err)
	}
	return counts, nil
}

// intCounts runs a two-column (int, count) grouping query.
func (r *entryRepository) intCounts(ctx context.Context, query string, args []interface{}, failMsg string) (map[int]int, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(failMsg, err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var key, count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, storeErr(failMsg, err)
		}
		counts[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(failMsg, err)
	}
	return counts, nil
}

// scanEntries scans rows into Entry structs
func scanEntries(rows pgx.Rows) ([]domain.Entry, error) {
	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var lockMac pgtype.Text
		var electric pgtype.Float8
		if err := rows.Scan(&e.ID, &e.Username, &e.LockID, &e.EntryTime, &lockMac, &e.RecordType, &electric); err != nil {
			return nil, storeErr("failed to scan entry", err)
		}
		if lockMac.Valid {
			e.LockMac = lockMac.String
		}
		if electric.Valid {
			v := electric.Float64
			e.ElectricQuantity = &v
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read entries", err)
	}
	return entries, nil
}
