package accuweather

import (
	"fmt"
	"strings"
)

const defaultBaseURL = "https://dataservice.accuweather.com"

type endpoint string

const (
	endpointGeoposition       endpoint = "geoposition"
	endpointCurrentConditions endpoint = "currentconditions"
	endpointDailyForecast     endpoint = "dailyforecast"
	endpointHourlyForecast    endpoint = "hourlyforecast"
)

// urlTemplates maps each endpoint to its path template. Placeholders are
// substituted by buildURL from the supplied parameters.
var urlTemplates = map[endpoint]string{
	endpointGeoposition:       "/locations/v1/cities/geoposition/search?apikey={api_key}&q={lat}%2C{lon}&language={language}",
	endpointCurrentConditions: "/currentconditions/v1/{location_key}?apikey={api_key}&details=true&language={language}",
	endpointDailyForecast:     "/forecasts/v1/daily/{days}day/{location_key}?apikey={api_key}&details=true&metric={metric}&language={language}",
	endpointHourlyForecast:    "/forecasts/v1/hourly/{hours}hour/{location_key}?apikey={api_key}&details=true&metric={metric}&language={language}",
}

// buildURL substitutes named placeholders in the endpoint template and
// prefixes the base URL. An unknown endpoint is a programming error, not a
// runtime condition.
func buildURL(base string, e endpoint, params map[string]string) (string, error) {
	template, ok := urlTemplates[e]
	if !ok {
		return "", fmt.Errorf("unknown endpoint %q", e)
	}

	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return base + strings.NewReplacer(pairs...).Replace(template), nil
}
