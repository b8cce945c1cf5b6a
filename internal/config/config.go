package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey         string // API key for authentication
	TrustedProxies []string

	// Analytics settings
	Timezone         string // reference timezone for all day/hour boundaries
	PrimaryLockID    string // lock authoritative for presence-style metrics
	EarlyHour        int
	LateHour         int
	LeaderboardLimit int
	SeasonsFile      string

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		Environment:   getEnv("ENVIRONMENT", "dev"),
		Version:       getEnv("VERSION", "dev"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "lockpulse"),
		APIKey:        getEnv("API_KEY", ""),
		Timezone:      getEnv("TIMEZONE", DefaultTimezone),
		PrimaryLockID: getEnv("PRIMARY_LOCK_ID", ""),
		SeasonsFile:   getEnv("SEASONS_FILE", ConfigPathSeasons),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.EarlyHour, err = getEnvInt("EARLY_HOUR", DefaultEarlyHour); err != nil {
		return nil, err
	}
	if cfg.LateHour, err = getEnvInt("LATE_HOUR", DefaultLateHour); err != nil {
		return nil, err
	}
	if cfg.LeaderboardLimit, err = getEnvInt("LEADERBOARD_LIMIT", DefaultLeaderboardLimit); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", DefaultRateLimitPerMinute); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", DefaultRateLimitBurst); err != nil {
		return nil, err
	}

	cfg.TrustedProxies = splitList(getEnv("TRUSTED_PROXIES", ""))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the settings the service cannot run without.
func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.PrimaryLockID == "" {
		return fmt.Errorf("PRIMARY_LOCK_ID environment variable must be set: presence metrics need a designated primary lock")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE value %q: %w", c.Timezone, err)
	}
	if c.EarlyHour < 0 || c.EarlyHour > 23 {
		return fmt.Errorf("EARLY_HOUR must be within 0-23, got %d", c.EarlyHour)
	}
	if c.LateHour < 0 || c.LateHour > 23 {
		return fmt.Errorf("LATE_HOUR must be within 0-23, got %d", c.LateHour)
	}
	return nil
}

// Location returns the parsed reference timezone. Call after Load succeeded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// splitList splits a comma-separated env value, dropping empty items.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
