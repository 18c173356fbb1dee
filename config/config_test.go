package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEAGUE_ID", "123456")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123456", cfg.ESPN.LeagueID)
	assert.Equal(t, 30*time.Second, cfg.ESPN.Timeout)
	assert.Equal(t, 2016, cfg.Fetch.StartYear)
	assert.Equal(t, 2024, cfg.Fetch.EndYear)
	assert.Equal(t, 14, cfg.Fetch.MaxWeek)
	assert.Equal(t, 0, cfg.Fetch.PlayoffWindow)
	assert.Equal(t, 150*time.Millisecond, cfg.Fetch.RequestDelay)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.HasPrivateLeagueAuth())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LEAGUE_ID", "123456")
	t.Setenv("START_YEAR", "2018")
	t.Setenv("END_YEAR", "2020")
	t.Setenv("MAX_WEEK", "13")
	t.Setenv("PLAYOFF_WINDOW", "3")
	t.Setenv("REQUEST_DELAY", "500ms")
	t.Setenv("OUTPUT_DIR", "/tmp/ffl")
	t.Setenv("ESPN_S2", "secret")
	t.Setenv("SWID", "{SWID}")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2018, cfg.Fetch.StartYear)
	assert.Equal(t, 2020, cfg.Fetch.EndYear)
	assert.Equal(t, 13, cfg.Fetch.MaxWeek)
	assert.Equal(t, 3, cfg.Fetch.PlayoffWindow)
	assert.Equal(t, 500*time.Millisecond, cfg.Fetch.RequestDelay)
	assert.Equal(t, "/tmp/ffl", cfg.Output.Dir)
	assert.True(t, cfg.HasPrivateLeagueAuth())
}

func TestLoadRequiresLeagueID(t *testing.T) {
	t.Setenv("LEAGUE_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "league id")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ESPN:   ESPNConfig{LeagueID: "1"},
			Fetch:  FetchConfig{StartYear: 2016, EndYear: 2024, MaxWeek: 14},
			Output: OutputConfig{Dir: "."},
		}
	}

	tests := map[string]func(*Config){
		"start year after end year": func(c *Config) { c.Fetch.StartYear = 2025 },
		"season out of range":       func(c *Config) { c.Fetch.StartYear = 1999 },
		"zero max week":             func(c *Config) { c.Fetch.MaxWeek = 0 },
		"negative playoff window":   func(c *Config) { c.Fetch.PlayoffWindow = -1 },
		"playoff window too wide":   func(c *Config) { c.Fetch.PlayoffWindow = 15 },
		"empty output dir":          func(c *Config) { c.Output.Dir = "" },
	}

	require.NoError(t, valid().Validate())
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_BOOL", "yes")
	assert.True(t, getBoolEnv("TEST_BOOL", false))
	t.Setenv("TEST_BOOL", "off")
	assert.False(t, getBoolEnv("TEST_BOOL", true))
	t.Setenv("TEST_BOOL", "garbage")
	assert.True(t, getBoolEnv("TEST_BOOL", true))

	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getIntEnv("TEST_INT", 7))
	t.Setenv("TEST_INT", "not a number")
	assert.Equal(t, 7, getIntEnv("TEST_INT", 7))

	assert.Equal(t, time.Minute, getDurationEnv("TEST_MISSING", time.Minute))
}
