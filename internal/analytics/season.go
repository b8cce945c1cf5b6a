package analytics

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/kvanta/lockpulse/internal/domain"
)

// SeasonCatalog is the static season configuration injected into the window
// resolver. It is loaded once at startup and never mutated.
type SeasonCatalog struct {
	seasons []domain.Season
}

// NewSeasonCatalog wraps an already-loaded season list.
func NewSeasonCatalog(seasons []domain.Season) *SeasonCatalog {
	return &SeasonCatalog{seasons: seasons}
}

// LoadSeasonCatalog reads the season catalog from a JSON file. A missing
// path yields an empty catalog rather than an error; seasons are optional.
func LoadSeasonCatalog(path string) (*SeasonCatalog, error) {
	if path == "" {
		return NewSeasonCatalog(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Default().Warn("Season catalog file not found, continuing without seasons", "path", path)
			return NewSeasonCatalog(nil), nil
		}
		return nil, fmt.Errorf(ErrMsgLoadSeasonCatalogFailed, err)
	}

	var seasons []domain.Season
	if err := json.Unmarshal(data, &seasons); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSeasonCatalogFailed, err)
	}

	sort.Slice(seasons, func(i, j int) bool { return seasons[i].StartAt.Before(seasons[j].StartAt) })
	slog.Default().Info(LogMsgSeasonCatalogLoaded, "path", path, "seasons", len(seasons))
	return NewSeasonCatalog(seasons), nil
}

// All returns the full catalog in start-date order.
func (c *SeasonCatalog) All() []domain.Season {
	return c.seasons
}

// Find resolves a season key. Unknown keys resolve to nil, which callers
// treat as "no season active".
func (c *SeasonCatalog) Find(key string) *domain.Season {
	if key == "" {
		return nil
	}
	for i := range c.seasons {
		if c.seasons[i].Key == key {
			return &c.seasons[i]
		}
	}
	return nil
}

// SeasonLevel maps season points to a level and the next threshold. Level 0
// means no points yet; at max level nextAt is nil.
func SeasonLevel(points int) (level int, nextAt *int) {
	for i, threshold := range SeasonLevelThresholds {
		if points >= threshold {
			level = i + 1
			continue
		}
		t := threshold
		return level, &t
	}
	return level, nil
}

// BuildSeasonProgress computes one user's standing from the season-window
// primary-lock pivot. Rank is the 1-based position among all participants
// ordered by points descending, username ascending.
func BuildSeasonProgress(season domain.Season, username string, stats []domain.UserDayStat) *domain.SeasonProgress {
	daysByUser := DaysByUser(stats)
	points := len(daysByUser[username])

	rank := 1
	for user, days := range daysByUser {
		if user == username {
			continue
		}
		if len(days) > points || (len(days) == points && user < username) {
			rank++
		}
	}

	streak := CalcStreak(daysByUser[username])
	level, nextAt := SeasonLevel(points)

	return &domain.SeasonProgress{
		SeasonKey:         season.Key,
		Username:          username,
		Points:            points,
		Rank:              rank,
		CurrentStreakDays: streak.Current,
		LongestStreakDays: streak.Longest,
		Level:             level,
		NextLevelAt:       nextAt,
	}
}
