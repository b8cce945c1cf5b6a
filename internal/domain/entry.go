package domain

import "time"

// Entry represents a single access-control event from the append-only entry
// log (one badge/lock swipe). Entries are externally owned and never mutated
// by this service; every aggregate is derived from range reads over them.
type Entry struct {
	ID               int64      `json:"id"`
	Username         string     `json:"username"`
	LockID           string     `json:"lock_id"`
	EntryTime        time.Time  `json:"entry_time"`
	LockMac          string     `json:"lock_mac,omitempty"`
	RecordType       int        `json:"record_type"`
	ElectricQuantity *float64   `json:"electric_quantity,omitempty"`
}

// EntryFilter is the canonical predicate applied uniformly to every aggregate
// query. Zero values mean "no constraint". Username matching is
// case-insensitive exact match.
type EntryFilter struct {
	LockID   string
	Username string
	Start    *time.Time
	End      *time.Time
}

// WithWindow returns a copy of the filter constrained to the given window.
func (f EntryFilter) WithWindow(w TimeWindow) EntryFilter {
	start, end := w.Start, w.End
	f.Start = &start
	f.End = &end
	return f
}

// WithLock returns a copy of the filter scoped to a single lock.
func (f EntryFilter) WithLock(lockID string) EntryFilter {
	f.LockID = lockID
	return f
}

// WithUsername returns a copy of the filter scoped to a single user.
func (f EntryFilter) WithUsername(username string) EntryFilter {
	f.Username = username
	return f
}

// UserDayStat is the user-day pivot every higher-level aggregate is built
// from: one row per user per calendar day (reference timezone) with at least
// one qualifying event. Day is the calendar date as midnight UTC, so day
// arithmetic on it is DST-free.
type UserDayStat struct {
	Username   string
	Day        time.Time
	FirstEvent time.Time
	LastEvent  time.Time
}

// TimeSpan holds the first and last entry instants of a filtered set.
type TimeSpan struct {
	First *time.Time `json:"first_entry_time"`
	Last  *time.Time `json:"last_entry_time"`
}

// Pagination describes the page of entries returned with a dashboard payload.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}
