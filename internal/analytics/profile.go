package analytics

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kvanta/lockpulse/internal/domain"
)

var displayCaser = cases.Title(language.English)

// BuildUserProfile derives the lifetime profile for one user from their
// primary-lock day pivot. uniqueLocks and span come from unscoped lifetime
// queries; recentWindow is the trailing window checked by the activity badge.
func BuildUserProfile(username string, primaryStats []domain.UserDayStat, uniqueLocks int, span domain.TimeSpan, recentWindow domain.TimeWindow, earlyHour, lateHour int, loc *time.Location) *domain.UserProfile {
	days := DaysByUser(primaryStats)[username]
	streak := CalcStreak(days)

	earlyDays := 0
	lateDays := 0
	for _, s := range primaryStats {
		if s.Username != username {
			continue
		}
		early, late := ClassifyDay(s, earlyHour, lateHour, loc)
		if early {
			earlyDays++
		}
		if late {
			lateDays++
		}
	}

	recentDays := DistinctDaysWithin(days, recentWindow)

	return &domain.UserProfile{
		Username:           username,
		DisplayUsername:    displayCaser.String(username),
		TotalVisits:        len(days),
		UniqueLocksVisited: uniqueLocks,
		FirstSeen:          span.First,
		LastSeen:           span.Last,
		LongestStreakDays:  streak.Longest,
		Achievements:       deriveAchievements(len(days), earlyDays, lateDays, recentDays),
	}
}

// deriveAchievements evaluates every badge rule independently; all that
// qualify are included.
func deriveAchievements(totalDays, earlyDays, lateDays, recentDays int) []domain.Achievement {
	achievements := []domain.Achievement{}

	for _, threshold := range VisitAchievementThresholds {
		if totalDays >= threshold {
			achievements = append(achievements, domain.Achievement{
				Key:         fmt.Sprintf("visits_%d", threshold),
				Title:       visitBadgeTitle(threshold),
				Description: fmt.Sprintf("Visited on %d different days", threshold),
			})
		}
	}

	if earlyDays >= 1 {
		achievements = append(achievements, domain.Achievement{
			Key:         "early_bird",
			Title:       "Early Bird",
			Description: "First through the door before the early hour",
		})
	}

	if lateDays >= 1 {
		achievements = append(achievements, domain.Achievement{
			Key:         "night_owl",
			Title:       "Night Owl",
			Description: "Swiped in during the late hours",
		})
	}

	if recentDays >= ActiveMonthMinDays {
		achievements = append(achievements, domain.Achievement{
			Key:         "active_month",
			Title:       "On a Roll",
			Description: fmt.Sprintf("Active on %d+ days in the last %d days", ActiveMonthMinDays, ActiveMonthWindowDays),
		})
	}

	return achievements
}

func visitBadgeTitle(threshold int) string {
	switch threshold {
	case 10:
		return "Regular"
	case 50:
		return "Devotee"
	case 100:
		return "Centurion"
	default:
		return fmt.Sprintf("%d Visits", threshold)
	}
}
