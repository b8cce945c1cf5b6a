package analytics

import (
	"sort"

	"github.com/kvanta/lockpulse/internal/domain"
)

// RankTop turns an entity→metric mapping into an ordered leaderboard:
// descending by count, ties broken by ascending identifier, truncated to
// limit. Entities with a zero metric are dropped.
func RankTop(counts map[string]int, limit int) []domain.LeaderboardEntry {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	entries := make([]domain.LeaderboardEntry, 0, len(counts))
	for id, count := range counts {
		if count <= 0 {
			continue
		}
		entries = append(entries, domain.LeaderboardEntry{ID: id, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].ID < entries[j].ID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// TopEntry returns the single best-ranked entry, or nil for an empty mapping.
func TopEntry(counts map[string]int) *domain.LeaderboardEntry {
	top := RankTop(counts, 1)
	if len(top) == 0 {
		return nil
	}
	return &top[0]
}

// BusiestHour returns the hour with the highest count, smallest hour winning
// ties, or nil for an empty mapping.
func BusiestHour(counts map[int]int) *domain.HourCount {
	var best *domain.HourCount
	for hour, count := range counts {
		if count <= 0 {
			continue
		}
		if best == nil || count > best.Count || (count == best.Count && hour < best.Hour) {
			best = &domain.HourCount{Hour: hour, Count: count}
		}
	}
	return best
}
