package accuweather

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string, v any) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func currentConditionsFixture(t *testing.T) *rawCurrentConditions {
	t.Helper()
	var raw []rawCurrentConditions
	loadFixture(t, "current_conditions.json", &raw)
	require.Len(t, raw, 1)
	return &raw[0]
}

func TestNormalizeCurrentConditionsMetric(t *testing.T) {
	raw := currentConditionsFixture(t)

	current, err := normalizeCurrentConditions(raw, Metric)
	require.NoError(t, err)

	assert.Equal(t, time.Unix(1704970020, 0).UTC(), current.DateTime)
	assert.True(t, current.IsDayTime)
	assert.Equal(t, 6, current.WeatherIcon)
	assert.Equal(t, "mostly cloudy", current.WeatherText)

	require.NotNil(t, current.Temperature.Value)
	assert.Equal(t, 0.6, *current.Temperature.Value)
	assert.Equal(t, "°C", current.Temperature.Unit)

	assert.Equal(t, 14.2, *current.WindSpeed.Value)
	assert.Equal(t, "km/h", current.WindSpeed.Unit)
	assert.Equal(t, 270, current.WindDirection)
	assert.Equal(t, 24.1, *current.WindGust.Value)

	// Pressure comes from the Pressure sub-object.
	assert.Equal(t, 1015.0, *current.Pressure.Value)
	assert.Equal(t, "mb", current.Pressure.Unit)
	assert.Equal(t, "steady", current.PressureTendency)

	assert.Equal(t, 92, current.RelativeHumidity)
	assert.Equal(t, 95, current.CloudCover)
	assert.Equal(t, 0, current.UVIndex)
	assert.Equal(t, "low", current.UVIndexText)

	assert.Equal(t, 1.4, *current.PrecipitationPast24Hours.Value)
	assert.Equal(t, "mm", current.PrecipitationPast24Hours.Unit)
}

func TestNormalizeCurrentConditionsImperial(t *testing.T) {
	raw := currentConditionsFixture(t)

	current, err := normalizeCurrentConditions(raw, Imperial)
	require.NoError(t, err)

	require.NotNil(t, current.Temperature.Value)
	assert.Equal(t, 33.0, *current.Temperature.Value)
	assert.Equal(t, "°F", current.Temperature.Unit)
	assert.Equal(t, "mi/h", current.WindSpeed.Unit)
	assert.Equal(t, "inHg", current.Pressure.Unit)
}

func TestNormalizeCurrentConditionsPrecipitationType(t *testing.T) {
	raw := currentConditionsFixture(t)

	// The raw PrecipitationType field is ignored while no precipitation is
	// reported.
	require.False(t, raw.HasPrecipitation)
	require.NotNil(t, raw.PrecipitationType)

	current, err := normalizeCurrentConditions(raw, Metric)
	require.NoError(t, err)
	assert.Nil(t, current.PrecipitationType)

	raw.HasPrecipitation = true
	current, err = normalizeCurrentConditions(raw, Metric)
	require.NoError(t, err)
	require.NotNil(t, current.PrecipitationType)
	assert.Equal(t, "rain", *current.PrecipitationType)
}

func TestNormalizeCurrentConditionsMissingField(t *testing.T) {
	raw := currentConditionsFixture(t)
	raw.Temperature = nil

	_, err := normalizeCurrentConditions(raw, Metric)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Temperature"`)
}

func TestNormalizeCurrentConditionsMissingBranch(t *testing.T) {
	raw := currentConditionsFixture(t)
	raw.Pressure.Imperial = nil

	_, err := normalizeCurrentConditions(raw, Imperial)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Pressure"`)

	// The metric branch is still complete.
	_, err = normalizeCurrentConditions(raw, Metric)
	require.NoError(t, err)
}

func TestNormalizeDailyForecast(t *testing.T) {
	var raw rawDailyForecast
	loadFixture(t, "daily_forecast.json", &raw)

	days, err := normalizeDailyForecast(&raw)
	require.NoError(t, err)
	require.Len(t, days, 5)

	first := days[0]
	assert.Equal(t, time.Unix(1704957600, 0).UTC(), first.Date)
	assert.Equal(t, 2.9, *first.TemperatureMax.Value)
	assert.Equal(t, "°C", first.TemperatureMax.Unit)
	assert.Equal(t, -2.1, *first.TemperatureMin.Value)

	// Day and night parts are flattened into suffixed fields; icon phrases
	// are lower-cased, short and long phrases keep the vendor casing.
	assert.Equal(t, "mostly cloudy", first.IconPhraseDay)
	assert.Equal(t, "Cloudy with a little rain", first.ShortPhraseDay)
	assert.Equal(t, "Cloudy with a little rain this afternoon", first.LongPhraseDay)
	assert.Equal(t, "cloudy", first.IconPhraseNight)
	require.NotNil(t, first.PrecipitationTypeDay)
	assert.Equal(t, "rain", *first.PrecipitationTypeDay)
	assert.Nil(t, first.PrecipitationTypeNight)
	assert.Equal(t, 13.0, *first.WindSpeedDay.Value)
	assert.Equal(t, 262, first.WindDirectionDay)

	// Categories with a descriptive suffix keep only the leading token.
	assert.Equal(t, "low", first.Mold.Text)
	assert.Equal(t, "low", first.Grass.Text)

	// UV index comes from the air-and-pollen list.
	require.NotNil(t, first.UVIndex.Value)
	assert.Equal(t, "low", first.UVIndex.Text)
}

func TestNormalizeDailyForecastOzonePlaceholder(t *testing.T) {
	var raw rawDailyForecast
	loadFixture(t, "daily_forecast.json", &raw)

	days, err := normalizeDailyForecast(&raw)
	require.NoError(t, err)

	// The first day's pollutant list has no air quality entry; the field is
	// synthesized with a nil value so the schema is stable across days.
	assert.Nil(t, days[0].Ozone.Value)
	assert.Empty(t, days[0].Ozone.Text)

	require.NotNil(t, days[1].Ozone.Value)
	assert.Equal(t, 29.0, *days[1].Ozone.Value)
	assert.Equal(t, "good", days[1].Ozone.Text)
}

func TestNormalizeDailyForecastMissingDayPart(t *testing.T) {
	var raw rawDailyForecast
	loadFixture(t, "daily_forecast.json", &raw)
	raw.DailyForecasts[2].Night = nil

	_, err := normalizeDailyForecast(&raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Night"`)
}

func TestNormalizeHourlyForecast(t *testing.T) {
	var raw []rawForecastHour
	loadFixture(t, "hourly_forecast.json", &raw)

	hours, err := normalizeHourlyForecast(raw)
	require.NoError(t, err)
	require.Len(t, hours, 12)

	first := hours[0]
	assert.Equal(t, time.Unix(1704970800, 0).UTC(), first.DateTime)
	assert.Equal(t, "cloudy", first.IconPhrase)
	assert.Equal(t, 0.5, *first.Temperature.Value)
	assert.Equal(t, "°C", first.Temperature.Unit)
	assert.Nil(t, first.PrecipitationType)
	assert.Equal(t, 278, first.WindDirection)
	assert.Equal(t, 91, first.RelativeHumidity)

	rainy := hours[3]
	require.NotNil(t, rainy.PrecipitationType)
	assert.Equal(t, "rain", *rainy.PrecipitationType)
	assert.Equal(t, 47, rainy.PrecipitationProbability)

	// Vendor order is preserved.
	for i := 1; i < len(hours); i++ {
		assert.True(t, hours[i].DateTime.After(hours[i-1].DateTime))
	}
}

func TestNormalizeHourlyForecastMissingField(t *testing.T) {
	var raw []rawForecastHour
	loadFixture(t, "hourly_forecast.json", &raw)
	raw[5].Temperature = nil

	_, err := normalizeHourlyForecast(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Temperature"`)
}
