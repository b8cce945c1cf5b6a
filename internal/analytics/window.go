package analytics

import (
	"log/slog"
	"time"

	"github.com/kvanta/lockpulse/internal/domain"
)

// ResolveWindow turns a period selector plus an optional reference date into
// a concrete [start, end] instant range in the reference timezone. A resolved
// season fully overrides the derived window and forces month-like semantics
// downstream.
//
// Date-only inputs ("2006-01-02", "2006-01") are parsed as wall-clock dates
// in loc, never shifted through a UTC conversion. Malformed strings fall back
// to generic timestamp parsing, then to now.
func ResolveWindow(period domain.PeriodKind, dateStr string, season *domain.Season, now time.Time, loc *time.Location) domain.TimeWindow {
	if season != nil {
		return season.Window()
	}

	now = now.In(loc)
	ref := parseReference(dateStr, now, loc)

	switch period {
	case domain.PeriodDay:
		return domain.TimeWindow{Start: startOfDay(ref), End: endOfDay(ref), PeriodKind: domain.PeriodDay}
	case domain.PeriodMonth:
		return domain.TimeWindow{Start: startOfMonth(ref), End: endOfMonth(ref), PeriodKind: domain.PeriodMonth}
	case domain.PeriodLast7:
		return domain.TimeWindow{Start: startOfDay(now.AddDate(0, 0, -(Last7Days - 1))), End: endOfDay(now), PeriodKind: domain.PeriodLast7}
	case domain.PeriodLast30:
		return domain.TimeWindow{Start: startOfDay(now.AddDate(0, 0, -(Last30Days - 1))), End: endOfDay(now), PeriodKind: domain.PeriodLast30}
	case domain.PeriodMTD:
		return domain.TimeWindow{Start: startOfMonth(now), End: endOfDay(now), PeriodKind: domain.PeriodMTD}
	default:
		// Unknown selectors degrade to a single day, same recovery posture
		// as malformed dates.
		return domain.TimeWindow{Start: startOfDay(ref), End: endOfDay(ref), PeriodKind: domain.PeriodDay}
	}
}

// parseReference parses an optional reference date string as a wall-clock
// date in loc. Returns now when the input is absent or unparseable.
func parseReference(dateStr string, now time.Time, loc *time.Location) time.Time {
	if dateStr == "" {
		return now
	}
	if t, err := time.ParseInLocation(DayKeyFormat, dateStr, loc); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(MonthKeyFormat, dateStr, loc); err == nil {
		return t
	}
	// Last resort before "now": a full timestamp.
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t.In(loc)
	}
	slog.Default().Debug(LogMsgInvalidDateInput, "date", dateStr)
	return now
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last representable instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// startOfMonth truncates t to the first instant of its calendar month.
func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// endOfMonth returns the last representable instant of t's calendar month.
func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// previousDay and nextDay shift a reference date by whole calendar days,
// staying DST-safe by going through the date components.
func previousDay(t time.Time) time.Time { return startOfDay(t).AddDate(0, 0, -1) }
func nextDay(t time.Time) time.Time     { return startOfDay(t).AddDate(0, 0, 1) }
