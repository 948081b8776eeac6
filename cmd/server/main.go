package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bieniu/accuweather"
	"github.com/bieniu/accuweather/internal/api"
	"github.com/bieniu/accuweather/internal/config"
	"github.com/bieniu/accuweather/internal/scheduler"
	"github.com/bieniu/accuweather/internal/services"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting AccuWeather API service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize the AccuWeather client
	client, err := newWeatherClient(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize AccuWeather client", zap.Error(err))
	}

	service := services.NewWeatherService(client, cfg, logger)

	weatherScheduler := scheduler.NewScheduler(service, cfg.Refresh.Interval, logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(service, logger)
	api.SetupRoutes(app, handler, logger)

	// Start scheduler
	if err := weatherScheduler.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	weatherScheduler.Stop()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func newWeatherClient(cfg *config.Config, logger *zap.Logger) (*accuweather.Client, error) {
	httpClient := &http.Client{
		Timeout: cfg.AccuWeather.Timeout,
	}

	units := accuweather.Metric
	if !cfg.AccuWeather.Metric {
		units = accuweather.Imperial
	}

	opts := []accuweather.Option{
		accuweather.WithUnits(units),
		accuweather.WithLanguage(cfg.AccuWeather.Language),
		accuweather.WithLogger(logger),
	}
	if cfg.AccuWeather.LocationKey != "" {
		opts = append(opts, accuweather.WithLocationKey(cfg.AccuWeather.LocationKey))
	} else {
		opts = append(opts, accuweather.WithCoordinates(cfg.AccuWeather.Latitude, cfg.AccuWeather.Longitude))
	}

	return accuweather.New(cfg.AccuWeather.APIKey, httpClient, opts...)
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
