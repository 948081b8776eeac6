package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bieniu/accuweather/internal/services"
)

// Scheduler refreshes the weather snapshot on a fixed interval so the API
// layer can serve it without an upstream round-trip.
type Scheduler struct {
	service  *services.WeatherService
	logger   *zap.Logger
	interval time.Duration
	cron     *cron.Cron

	mu      sync.Mutex
	running bool
	lastRun time.Time
}

func NewScheduler(service *services.WeatherService, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		service:  service,
		logger:   logger,
		interval: interval,
		cron:     cron.New(),
	}
}

func (s *Scheduler) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	schedule := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(schedule, s.runRefresh); err != nil {
		return fmt.Errorf("scheduling refresh failed: %w", err)
	}

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))

	// Run immediately on start
	go s.runRefresh()

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
}

func (s *Scheduler) runRefresh() {
	startTime := time.Now()
	s.mu.Lock()
	s.lastRun = startTime
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := s.service.Refresh(ctx); err != nil {
		s.logger.Error("Scheduled weather refresh failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
		return
	}

	s.logger.Info("Scheduled weather refresh completed",
		zap.Duration("duration", time.Since(startTime)))
}

func (s *Scheduler) Status() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]interface{}{
		"running":  s.running,
		"interval": s.interval.String(),
		"last_run": s.lastRun,
	}
}
