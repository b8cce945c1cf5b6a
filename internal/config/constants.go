package config

const (
	// Configuration file paths
	ConfigPathSeasons = "configs/seasons.json"

	// DefaultTimezone is the reference timezone for all calendar-day and
	// hour boundaries when TIMEZONE is not set
	DefaultTimezone = "UTC"

	// Time-of-day thresholds (hours, reference timezone)
	DefaultEarlyHour = 8
	DefaultLateHour  = 22

	// DefaultLeaderboardLimit is the top-N size per leaderboard category
	DefaultLeaderboardLimit = 5

	// Rate limiting defaults (per client key)
	DefaultRateLimitPerMinute = 120
	DefaultRateLimitBurst     = 30
)
