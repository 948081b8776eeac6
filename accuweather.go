// Package accuweather is a client for the AccuWeather data service. It
// resolves coordinates into a location key, fetches current conditions and
// daily or hourly forecasts, and normalizes the vendor payloads into flat
// typed records.
package accuweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

const (
	// DefaultForecastDays is used when GetDailyForecast is called with a
	// non-positive day count.
	DefaultForecastDays = 5
	// DefaultForecastHours is used when GetHourlyForecast is called with a
	// non-positive hour count.
	DefaultForecastHours = 12

	defaultLanguage = "en"

	rateLimitHeader         = "RateLimit-Remaining"
	requestsExceededMessage = "The allowed number of requests has been exceeded."
)

// HTTPClient performs HTTP requests. *http.Client satisfies it; timeouts
// and cancellation belong to the supplied transport, not to this library.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client performs AccuWeather API requests. The location key is resolved at
// most once per instance and cached for its lifetime. A mutex guards the
// resolved location and the remaining-request counter; the client performs
// no internal retries and no parallel fan-out.
type Client struct {
	httpClient HTTPClient
	logger     *zap.Logger
	baseURL    string
	apiKey     string
	language   string
	units      UnitSystem

	latitude       float64
	longitude      float64
	hasCoordinates bool

	mu                sync.Mutex
	location          *Location
	requestsRemaining int
	hasRequestCount   bool
}

// Option configures a Client.
type Option func(*Client)

// WithCoordinates sets the geographic point to resolve into a location key.
func WithCoordinates(latitude, longitude float64) Option {
	return func(c *Client) {
		c.latitude = latitude
		c.longitude = longitude
		c.hasCoordinates = true
	}
}

// WithLocationKey supplies an already known location key, skipping the
// geoposition search.
func WithLocationKey(key string) Option {
	return func(c *Client) {
		c.location = &Location{Key: key}
	}
}

// WithUnits selects the unit system for all returned measurements. The
// default is Metric.
func WithUnits(units UnitSystem) Option {
	return func(c *Client) {
		c.units = units
	}
}

// WithLanguage sets the language query parameter. The default is "en".
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// WithLogger sets the logger. The default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithBaseURL overrides the service base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// New validates the API key and the supplied location and returns a ready
// client. Either WithLocationKey or WithCoordinates must be given.
func New(apiKey string, httpClient HTTPClient, opts ...Option) (*Client, error) {
	if !validAPIKey(apiKey) {
		return nil, fmt.Errorf("%w: API key must be a 32-character hexadecimal string", ErrInvalidAPIKey)
	}

	c := &Client{
		httpClient: httpClient,
		logger:     zap.NewNop(),
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		language:   defaultLanguage,
		units:      Metric,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.location == nil {
		if !c.hasCoordinates || !validCoordinates(c.latitude, c.longitude) {
			return nil, fmt.Errorf("%w: latitude must be within [-90, 90] and longitude within [-180, 180]", ErrInvalidCoordinates)
		}
	}
	return c, nil
}

// GetLocation returns the resolved location, performing the geoposition
// search on first use. A failed resolution leaves the client unresolved and
// may be retried.
func (c *Client) GetLocation(ctx context.Context) (Location, error) {
	if loc, ok := c.resolvedLocation(); ok {
		return loc, nil
	}
	if err := c.resolveLocation(ctx); err != nil {
		return Location{}, err
	}
	loc, _ := c.resolvedLocation()
	return loc, nil
}

// GetCurrentConditions fetches and normalizes the current weather
// observation, resolving the location first if needed.
func (c *Client) GetCurrentConditions(ctx context.Context) (*CurrentConditions, error) {
	locationKey, err := c.ensureLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	url, err := buildURL(c.baseURL, endpointCurrentConditions, map[string]string{
		"api_key":      c.apiKey,
		"location_key": locationKey,
		"language":     c.language,
	})
	if err != nil {
		return nil, err
	}

	body, err := c.getData(ctx, url)
	if err != nil {
		return nil, err
	}

	// The endpoint returns a single-element array.
	var raw []rawCurrentConditions
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing current conditions response: %w", err)
	}
	if len(raw) == 0 {
		return nil, missingFieldError("currentconditions")
	}
	return normalizeCurrentConditions(&raw[0], c.units)
}

// GetDailyForecast fetches and normalizes the daily forecast. Entries keep
// the vendor's chronological order. A non-positive days falls back to
// DefaultForecastDays.
func (c *Client) GetDailyForecast(ctx context.Context, days int) ([]ForecastDay, error) {
	if days <= 0 {
		days = DefaultForecastDays
	}

	locationKey, err := c.ensureLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	url, err := buildURL(c.baseURL, endpointDailyForecast, map[string]string{
		"api_key":      c.apiKey,
		"location_key": locationKey,
		"days":         strconv.Itoa(days),
		"metric":       c.units.metricFlag(),
		"language":     c.language,
	})
	if err != nil {
		return nil, err
	}

	body, err := c.getData(ctx, url)
	if err != nil {
		return nil, err
	}

	var raw rawDailyForecast
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing daily forecast response: %w", err)
	}
	return normalizeDailyForecast(&raw)
}

// GetHourlyForecast fetches and normalizes the hourly forecast. Entries
// keep the vendor's chronological order. A non-positive hours falls back to
// DefaultForecastHours.
func (c *Client) GetHourlyForecast(ctx context.Context, hours int) ([]ForecastHour, error) {
	if hours <= 0 {
		hours = DefaultForecastHours
	}

	locationKey, err := c.ensureLocationKey(ctx)
	if err != nil {
		return nil, err
	}

	url, err := buildURL(c.baseURL, endpointHourlyForecast, map[string]string{
		"api_key":      c.apiKey,
		"location_key": locationKey,
		"hours":        strconv.Itoa(hours),
		"metric":       c.units.metricFlag(),
		"language":     c.language,
	})
	if err != nil {
		return nil, err
	}

	body, err := c.getData(ctx, url)
	if err != nil {
		return nil, err
	}

	var raw []rawForecastHour
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing hourly forecast response: %w", err)
	}
	return normalizeHourlyForecast(raw)
}

// LocationKey returns the resolved location key, or an empty string before
// resolution.
func (c *Client) LocationKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.location == nil {
		return ""
	}
	return c.location.Key
}

// LocationName returns the resolved location name, or an empty string
// before resolution or when the key was supplied at construction.
func (c *Client) LocationName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.location == nil {
		return ""
	}
	return c.location.Name
}

// RequestsRemaining reports the request quota left for the API key, as seen
// on the most recent response. The second value is false until a response
// carried the quota header.
func (c *Client) RequestsRemaining() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requestsRemaining, c.hasRequestCount
}

func (c *Client) resolvedLocation() (Location, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.location == nil {
		return Location{}, false
	}
	return *c.location, true
}

func (c *Client) ensureLocationKey(ctx context.Context) (string, error) {
	if loc, ok := c.resolvedLocation(); ok {
		return loc.Key, nil
	}
	if err := c.resolveLocation(ctx); err != nil {
		return "", err
	}
	loc, _ := c.resolvedLocation()
	return loc.Key, nil
}

func (c *Client) resolveLocation(ctx context.Context) error {
	url, err := buildURL(c.baseURL, endpointGeoposition, map[string]string{
		"api_key":  c.apiKey,
		"lat":      strconv.FormatFloat(c.latitude, 'f', -1, 64),
		"lon":      strconv.FormatFloat(c.longitude, 'f', -1, 64),
		"language": c.language,
	})
	if err != nil {
		return err
	}

	body, err := c.getData(ctx, url)
	if err != nil {
		return err
	}

	var raw rawLocation
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("parsing geoposition response: %w", err)
	}
	if raw.Key == nil {
		return missingFieldError("Key")
	}
	if raw.LocalizedName == nil {
		return missingFieldError("LocalizedName")
	}

	c.mu.Lock()
	c.location = &Location{Key: *raw.Key, Name: *raw.LocalizedName}
	c.mu.Unlock()

	c.logger.Debug("Location resolved",
		zap.String("key", *raw.Key),
		zap.String("name", *raw.LocalizedName))
	return nil
}

// getData performs a single GET round-trip, maps error responses to the
// library taxonomy and records the remaining-request quota header.
func (c *Client) getData(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}
	req.Header.Set("Content-Encoding", "gzip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failures are surfaced as-is.
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidAPIKey
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errBody rawError
		if json.Unmarshal(body, &errBody) == nil && errBody.Message == requestsExceededMessage {
			return nil, ErrRequestsExceeded
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	if remaining := resp.Header.Get(rateLimitHeader); remaining != "" {
		if value, err := strconv.Atoi(remaining); err == nil && value >= 0 {
			c.mu.Lock()
			c.requestsRemaining = value
			c.hasRequestCount = true
			c.mu.Unlock()
		}
	}

	c.logger.Debug("Data retrieved",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("body_size", len(body)))
	return body, nil
}
