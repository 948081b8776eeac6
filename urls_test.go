package accuweather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint endpoint
		params   map[string]string
		want     string
	}{
		{
			name:     "geoposition",
			endpoint: endpointGeoposition,
			params: map[string]string{
				"api_key":  "32-character-string-1234567890qw",
				"lat":      "52.0677904",
				"lon":      "19.4795644",
				"language": "en",
			},
			want: "https://dataservice.accuweather.com/locations/v1/cities/geoposition/search?apikey=32-character-string-1234567890qw&q=52.0677904%2C19.4795644&language=en",
		},
		{
			name:     "current conditions",
			endpoint: endpointCurrentConditions,
			params: map[string]string{
				"api_key":      "32-character-string-1234567890qw",
				"location_key": "268068",
				"language":     "en",
			},
			want: "https://dataservice.accuweather.com/currentconditions/v1/268068?apikey=32-character-string-1234567890qw&details=true&language=en",
		},
		{
			name:     "daily forecast",
			endpoint: endpointDailyForecast,
			params: map[string]string{
				"api_key":      "32-character-string-1234567890qw",
				"location_key": "268068",
				"days":         "5",
				"metric":       "true",
				"language":     "en",
			},
			want: "https://dataservice.accuweather.com/forecasts/v1/daily/5day/268068?apikey=32-character-string-1234567890qw&details=true&metric=true&language=en",
		},
		{
			name:     "hourly forecast",
			endpoint: endpointHourlyForecast,
			params: map[string]string{
				"api_key":      "32-character-string-1234567890qw",
				"location_key": "268068",
				"hours":        "12",
				"metric":       "false",
				"language":     "pl",
			},
			want: "https://dataservice.accuweather.com/forecasts/v1/hourly/12hour/268068?apikey=32-character-string-1234567890qw&details=true&metric=false&language=pl",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildURL(defaultBaseURL, tt.endpoint, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildURLUnknownEndpoint(t *testing.T) {
	_, err := buildURL(defaultBaseURL, endpoint("alerts"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown endpoint")
}
