package services

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/bieniu/accuweather"
	"github.com/bieniu/accuweather/internal/config"
)

// WeatherService wraps the AccuWeather client with a circuit breaker and
// keeps the most recent current-conditions snapshot for the API layer. The
// breaker fails fast while the upstream is unhealthy; it never retries.
type WeatherService struct {
	client  *accuweather.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger

	mu           sync.RWMutex
	lastSnapshot *accuweather.CurrentConditions
	lastUpdated  time.Time
	successCount int
	failureCount int
}

func NewWeatherService(client *accuweather.Client, cfg *config.Config, logger *zap.Logger) *WeatherService {
	threshold := cfg.CircuitBreaker.Threshold
	if threshold <= 0 {
		threshold = 3
	}

	breakerSettings := gobreaker.Settings{
		Name:        "accuweather",
		MaxRequests: 1,
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(threshold)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("client", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &WeatherService{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker(breakerSettings),
		logger:  logger,
	}
}

func (s *WeatherService) Location(ctx context.Context) (accuweather.Location, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.client.GetLocation(ctx)
	})
	if err != nil {
		return accuweather.Location{}, err
	}
	return result.(accuweather.Location), nil
}

func (s *WeatherService) CurrentConditions(ctx context.Context) (*accuweather.CurrentConditions, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.client.GetCurrentConditions(ctx)
	})
	if err != nil {
		return nil, err
	}

	current := result.(*accuweather.CurrentConditions)
	s.mu.Lock()
	s.lastSnapshot = current
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	return current, nil
}

func (s *WeatherService) DailyForecast(ctx context.Context, days int) ([]accuweather.ForecastDay, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.client.GetDailyForecast(ctx, days)
	})
	if err != nil {
		return nil, err
	}
	return result.([]accuweather.ForecastDay), nil
}

func (s *WeatherService) HourlyForecast(ctx context.Context, hours int) ([]accuweather.ForecastHour, error) {
	result, err := s.execute(func() (interface{}, error) {
		return s.client.GetHourlyForecast(ctx, hours)
	})
	if err != nil {
		return nil, err
	}
	return result.([]accuweather.ForecastHour), nil
}

// Refresh fetches fresh current conditions for the scheduled background
// update.
func (s *WeatherService) Refresh(ctx context.Context) error {
	_, err := s.CurrentConditions(ctx)
	return err
}

// Snapshot returns the last successfully fetched current conditions.
func (s *WeatherService) Snapshot() (*accuweather.CurrentConditions, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSnapshot, s.lastUpdated, s.lastSnapshot != nil
}

func (s *WeatherService) Stats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"success_count": s.successCount,
		"failure_count": s.failureCount,
		"last_updated":  s.lastUpdated,
		"breaker_state": s.breaker.State().String(),
		"location_key":  s.client.LocationKey(),
		"location_name": s.client.LocationName(),
	}
	if remaining, ok := s.client.RequestsRemaining(); ok {
		stats["requests_remaining"] = remaining
	}
	return stats
}

func (s *WeatherService) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := s.breaker.Execute(fn)

	s.mu.Lock()
	if err != nil {
		s.failureCount++
	} else {
		s.successCount++
	}
	s.mu.Unlock()

	return result, err
}
