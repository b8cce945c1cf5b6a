package analytics

import (
	"fmt"

	"github.com/kvanta/lockpulse/internal/domain"
)

// DAUPerDay counts distinct active users per calendar day from the pivot.
func DAUPerDay(stats []domain.UserDayStat) map[string]int {
	usersByDay := make(map[string]map[string]struct{})
	for _, s := range stats {
		day := s.Day.Format(DayKeyFormat)
		users, ok := usersByDay[day]
		if !ok {
			users = make(map[string]struct{})
			usersByDay[day] = users
		}
		users[s.Username] = struct{}{}
	}

	out := make(map[string]int, len(usersByDay))
	for day, users := range usersByDay {
		out[day] = len(users)
	}
	return out
}

// WAUByWeek counts distinct active users per ISO week ("2006-W01").
func WAUByWeek(stats []domain.UserDayStat) map[string]int {
	usersByWeek := make(map[string]map[string]struct{})
	for _, s := range stats {
		year, week := s.Day.ISOWeek()
		key := fmt.Sprintf("%04d-W%02d", year, week)
		users, ok := usersByWeek[key]
		if !ok {
			users = make(map[string]struct{})
			usersByWeek[key] = users
		}
		users[s.Username] = struct{}{}
	}

	out := make(map[string]int, len(usersByWeek))
	for week, users := range usersByWeek {
		out[week] = len(users)
	}
	return out
}

// MAUByMonth counts distinct active users per calendar month ("2006-01").
func MAUByMonth(stats []domain.UserDayStat) map[string]int {
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

	out := make(map[string]int, len(usersByMonth))
	for month, users := range usersByMonth {
		out[month] = len(users)
	}
	return out
}
