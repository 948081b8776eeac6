package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	AccuWeather struct {
		APIKey      string
		LocationKey string
		Latitude    float64
		Longitude   float64
		Metric      bool
		Language    string
		Timeout     time.Duration
	}

	Refresh struct {
		Interval time.Duration
	}

	CircuitBreaker struct {
		Threshold int
		Timeout   time.Duration
	}
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("SERVER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("SERVER_WRITE_TIMEOUT", "10s"))

	// AccuWeather configuration
	cfg.AccuWeather.APIKey = getEnv("ACCUWEATHER_API_KEY", "")
	cfg.AccuWeather.LocationKey = getEnv("ACCUWEATHER_LOCATION_KEY", "")
	cfg.AccuWeather.Latitude = parseFloat(getEnv("ACCUWEATHER_LATITUDE", "0"))
	cfg.AccuWeather.Longitude = parseFloat(getEnv("ACCUWEATHER_LONGITUDE", "0"))
	cfg.AccuWeather.Metric = parseBool(getEnv("ACCUWEATHER_METRIC", "true"))
	cfg.AccuWeather.Language = getEnv("ACCUWEATHER_LANGUAGE", "en")
	cfg.AccuWeather.Timeout = parseDuration(getEnv("ACCUWEATHER_TIMEOUT", "10s"))

	// Refresh configuration
	cfg.Refresh.Interval = parseDuration(getEnv("REFRESH_INTERVAL", "15m"))

	// Circuit breaker configuration
	cfg.CircuitBreaker.Threshold = parseInt(getEnv("CIRCUIT_BREAKER_THRESHOLD", "3"))
	cfg.CircuitBreaker.Timeout = parseDuration(getEnv("CIRCUIT_BREAKER_TIMEOUT", "30s"))

	if cfg.AccuWeather.APIKey == "" {
		return nil, fmt.Errorf("ACCUWEATHER_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}

func parseBool(value string) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		zap.L().Warn("Failed to parse bool", zap.String("value", value), zap.Error(err))
		return false
	}
	return boolValue
}
