package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvanta/lockpulse/internal/domain"
)

func TestRankTop(t *testing.T) {
	t.Run("descending by count with id tie-break", func(t *testing.T) {
		counts := map[string]int{
			"carol": 3,
			"alice": 5,
			"dave":  3,
			"bob":   8,
		}

		ranked := RankTop(counts, 10)

		expected := []domain.LeaderboardEntry{
			{ID: "bob", Count: 8},
			{ID: "alice", Count: 5},
			{ID: "carol", Count: 3},
			{ID: "dave", Count: 3},
		}
		assert.Equal(t, expected, ranked)
	})

	t.Run("zero and negative metrics are dropped", func(t *testing.T) {
		counts := map[string]int{
			"alice": 2,
			"bob":   0,
			"carol": -1,
		}

		ranked := RankTop(counts, 10)

		assert.Equal(t, []domain.LeaderboardEntry{{ID: "alice", Count: 2}}, ranked)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		counts := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}

		ranked := RankTop(counts, 2)

		assert.Equal(t, []domain.LeaderboardEntry{{ID: "d", Count: 4}, {ID: "c", Count: 3}}, ranked)
	})

	t.Run("non-positive limit uses the default", func(t *testing.T) {
		counts := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6}

		ranked := RankTop(counts, 0)

		assert.Len(t, ranked, DefaultLeaderboardLimit)
	})

	t.Run("empty input yields empty board", func(t *testing.T) {
		assert.Empty(t, RankTop(nil, 5))
	})

	t.Run("order is a total order", func(t *testing.T) {
		counts := map[string]int{"x": 2, "y": 2, "z": 2}

		// Map iteration order varies; the ranking must not.
		first := RankTop(counts, 3)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, RankTop(counts, 3))
		}
	})
}

func TestTopEntry(t *testing.T) {
	assert.Nil(t, TopEntry(nil))
	assert.Nil(t, TopEntry(map[string]int{"ghost": 0}))

	top := TopEntry(map[string]int{"alice": 3, "bob": 7})
	assert.Equal(t, &domain.LeaderboardEntry{ID: "bob", Count: 7}, top)
}

func TestBusiestHour(t *testing.T) {
	t.Run("highest count wins", func(t *testing.T) {
		best := BusiestHour(map[int]int{9: 3, 14: 1, 22: 2})

		assert.Equal(t, &domain.HourCount{Hour: 9, Count: 3}, best)
	})

	t.Run("smallest hour wins ties", func(t *testing.T) {
		best := BusiestHour(map[int]int{17: 4, 8: 4, 12: 4})

		assert.Equal(t, &domain.HourCount{Hour: 8, Count: 4}, best)
	})

	t.Run("empty and all-zero maps yield nil", func(t *testing.T) {
		assert.Nil(t, BusiestHour(nil))
		assert.Nil(t, BusiestHour(map[int]int{3: 0}))
	})
}
