package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bieniu/accuweather"
	"github.com/bieniu/accuweather/internal/services"
)

type Handler struct {
	service *services.WeatherService
	logger  *zap.Logger
}

func NewHandler(service *services.WeatherService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetLocation handles GET /api/v1/location
func (h *Handler) GetLocation(c *fiber.Ctx) error {
	location, err := h.service.Location(c.Context())
	if err != nil {
		return h.weatherError(c, "Failed to resolve location", err)
	}
	return c.JSON(location)
}

// GetCurrentConditions handles GET /api/v1/current
func (h *Handler) GetCurrentConditions(c *fiber.Ctx) error {
	h.logger.Info("Fetching current conditions")

	current, err := h.service.CurrentConditions(c.Context())
	if err != nil {
		return h.weatherError(c, "Failed to fetch current conditions", err)
	}
	return c.JSON(current)
}

// GetDailyForecast handles GET /api/v1/forecast/daily
func (h *Handler) GetDailyForecast(c *fiber.Ctx) error {
	daysStr := c.Query("days", strconv.Itoa(accuweather.DefaultForecastDays))
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 1 || days > 15 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Days parameter must be between 1 and 15",
		})
	}

	h.logger.Info("Fetching daily forecast", zap.Int("days", days))

	forecast, err := h.service.DailyForecast(c.Context(), days)
	if err != nil {
		return h.weatherError(c, "Failed to fetch daily forecast", err)
	}
	return c.JSON(forecast)
}

// GetHourlyForecast handles GET /api/v1/forecast/hourly
func (h *Handler) GetHourlyForecast(c *fiber.Ctx) error {
	hoursStr := c.Query("hours", strconv.Itoa(accuweather.DefaultForecastHours))
	hours, err := strconv.Atoi(hoursStr)
	if err != nil || hours < 1 || hours > 120 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Hours parameter must be between 1 and 120",
		})
	}

	h.logger.Info("Fetching hourly forecast", zap.Int("hours", hours))

	forecast, err := h.service.HourlyForecast(c.Context(), hours)
	if err != nil {
		return h.weatherError(c, "Failed to fetch hourly forecast", err)
	}
	return c.JSON(forecast)
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	snapshot, lastUpdated, ok := h.service.Snapshot()

	response := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
		"stats":     h.service.Stats(),
	}
	if ok {
		response["last_updated"] = lastUpdated
		response["snapshot"] = snapshot
	}
	return c.JSON(response)
}

// weatherError maps the client library error taxonomy to HTTP statuses.
func (h *Handler) weatherError(c *fiber.Ctx, message string, err error) error {
	h.logger.Error(message, zap.Error(err))

	status := fiber.StatusInternalServerError
	var apiErr *accuweather.APIError
	switch {
	case errors.Is(err, accuweather.ErrInvalidAPIKey):
		status = fiber.StatusUnauthorized
	case errors.Is(err, accuweather.ErrRequestsExceeded):
		status = fiber.StatusTooManyRequests
	case errors.As(err, &apiErr):
		status = fiber.StatusBadGateway
	}

	return c.Status(status).JSON(fiber.Map{
		"error":   message,
		"details": err.Error(),
	})
}

var startTime = time.Now()
