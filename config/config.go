package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ffl-history-go/logging"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// ESPN API configuration
	ESPN ESPNConfig `json:"espn"`

	// Fetch configuration
	Fetch FetchConfig `json:"fetch"`

	// Output configuration
	Output OutputConfig `json:"output"`

	// Logging configuration
	Logging LoggingConfig `json:"logging"`
}

// ESPNConfig holds ESPN fantasy API access configuration
type ESPNConfig struct {
	LeagueID string        `json:"league_id"`
	ESPNS2   string        `json:"-"`
	SWID     string        `json:"-"`
	Timeout  time.Duration `json:"timeout"`
}

// FetchConfig holds season-range and pacing configuration
type FetchConfig struct {
	StartYear     int           `json:"start_year"`
	EndYear       int           `json:"end_year"`
	MaxWeek       int           `json:"max_week"`
	PlayoffWindow int           `json:"playoff_window"`
	RequestDelay  time.Duration `json:"request_delay"`
}

// OutputConfig holds artifact output configuration
type OutputConfig struct {
	Dir string `json:"dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `json:"level"`
	Prefix      string `json:"prefix"`
	EnableColor bool   `json:"enable_color"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Don't treat missing .env as an error
		logging.Debugf("Could not load .env file: %v", err)
	}

	config := &Config{
		ESPN: ESPNConfig{
			LeagueID: getEnv("LEAGUE_ID", ""),
			ESPNS2:   getEnv("ESPN_S2", ""),
			SWID:     getEnv("SWID", ""),
			Timeout:  getDurationEnv("HTTP_TIMEOUT", 30*time.Second),
		},
		Fetch: FetchConfig{
			StartYear:     getIntEnv("START_YEAR", 2016),
			EndYear:       getIntEnv("END_YEAR", 2024),
			MaxWeek:       getIntEnv("MAX_WEEK", 14),
			PlayoffWindow: getIntEnv("PLAYOFF_WINDOW", 0),
			RequestDelay:  getDurationEnv("REQUEST_DELAY", 150*time.Millisecond),
		},
		Output: OutputConfig{
			Dir: getEnv("OUTPUT_DIR", "."),
		},
		Logging: LoggingConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Prefix:      getEnv("LOG_PREFIX", "ffl-history"),
			EnableColor: getBoolEnv("LOG_COLOR", true),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields and sensible values
func (c *Config) Validate() error {
	if c.ESPN.LeagueID == "" {
		return fmt.Errorf("league id is required")
	}

	if c.Fetch.StartYear > c.Fetch.EndYear {
		return fmt.Errorf("start year %d is after end year %d", c.Fetch.StartYear, c.Fetch.EndYear)
	}
	if c.Fetch.StartYear < 2005 || c.Fetch.EndYear > 2030 {
		return fmt.Errorf("season range must be within 2005-2030, got: %d-%d", c.Fetch.StartYear, c.Fetch.EndYear)
	}

	if c.Fetch.MaxWeek < 1 {
		return fmt.Errorf("max week must be at least 1, got: %d", c.Fetch.MaxWeek)
	}
	if c.Fetch.PlayoffWindow < 0 || c.Fetch.PlayoffWindow > c.Fetch.MaxWeek {
		return fmt.Errorf("playoff window must be between 0 and max week %d, got: %d", c.Fetch.MaxWeek, c.Fetch.PlayoffWindow)
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output directory is required")
	}

	return nil
}

// HasPrivateLeagueAuth returns true if ESPN cookie credentials are configured.
// Public leagues can be fetched without them.
func (c *Config) HasPrivateLeagueAuth() bool {
	return c.ESPN.ESPNS2 != "" && c.ESPN.SWID != ""
}

// LogConfiguration logs the current configuration (without sensitive data)
func (c *Config) LogConfiguration() {
	logging.Info("=== Application Configuration ===")
	logging.Infof("ESPN: League=%s, Timeout=%s, PrivateAuth=%t",
		c.ESPN.LeagueID, c.ESPN.Timeout, c.HasPrivateLeagueAuth())
	logging.Infof("Fetch: Seasons=%d-%d, MaxWeek=%d, PlayoffWindow=%d, RequestDelay=%s",
		c.Fetch.StartYear, c.Fetch.EndYear, c.Fetch.MaxWeek, c.Fetch.PlayoffWindow, c.Fetch.RequestDelay)
	logging.Infof("Output: Dir=%s", c.Output.Dir)
	logging.Infof("Logging: Level=%s, Prefix=%s, Color=%t",
		c.Logging.Level, c.Logging.Prefix, c.Logging.EnableColor)
	logging.Info("================================")
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
