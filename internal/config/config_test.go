package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ACCUWEATHER_API_KEY", "32-character-string-1234567890qw")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "32-character-string-1234567890qw", cfg.AccuWeather.APIKey)
	assert.True(t, cfg.AccuWeather.Metric)
	assert.Equal(t, "en", cfg.AccuWeather.Language)
	assert.Equal(t, 15*time.Minute, cfg.Refresh.Interval)
	assert.Equal(t, 3, cfg.CircuitBreaker.Threshold)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ACCUWEATHER_API_KEY", "32-character-string-1234567890qw")
	t.Setenv("ACCUWEATHER_LOCATION_KEY", "268068")
	t.Setenv("ACCUWEATHER_METRIC", "false")
	t.Setenv("ACCUWEATHER_LANGUAGE", "pl")
	t.Setenv("REFRESH_INTERVAL", "5m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "268068", cfg.AccuWeather.LocationKey)
	assert.False(t, cfg.AccuWeather.Metric)
	assert.Equal(t, "pl", cfg.AccuWeather.Language)
	assert.Equal(t, 5*time.Minute, cfg.Refresh.Interval)
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("ACCUWEATHER_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACCUWEATHER_API_KEY")
}
