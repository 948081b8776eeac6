package accuweather

import (
	"strings"
	"time"
)

// Location is a resolved geographic point. The vendor-assigned key is used
// by all subsequent requests instead of raw coordinates.
type Location struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Measurement is a single physical quantity. Unit is derived from UnitType
// via the unit table at construction and is never set independently. Text
// carries the lower-cased category for list-derived values such as pollen.
type Measurement struct {
	Value    *float64 `json:"value"`
	UnitType *int     `json:"unit_type,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Text     string   `json:"text,omitempty"`
}

func newMeasurement(value *float64, unitType *int, text string) Measurement {
	return Measurement{
		Value:    value,
		UnitType: unitType,
		Unit:     unitFromType(unitType),
		Text:     strings.ToLower(text),
	}
}

// CurrentConditions is the flattened current weather observation, with each
// physical quantity reduced to the unit system configured on the client.
type CurrentConditions struct {
	DateTime         time.Time `json:"date_time"`
	IsDayTime        bool      `json:"is_day_time"`
	WeatherIcon      int       `json:"weather_icon"`
	WeatherText      string    `json:"weather_text"`
	HasPrecipitation bool      `json:"has_precipitation"`
	// PrecipitationType is nil unless HasPrecipitation is true.
	PrecipitationType *string `json:"precipitation_type"`

	Temperature              Measurement `json:"temperature"`
	RealFeelTemperature      Measurement `json:"real_feel_temperature"`
	RealFeelTemperatureShade Measurement `json:"real_feel_temperature_shade"`
	ApparentTemperature      Measurement `json:"apparent_temperature"`
	WindChillTemperature     Measurement `json:"wind_chill_temperature"`
	WetBulbTemperature       Measurement `json:"wet_bulb_temperature"`
	DewPoint                 Measurement `json:"dew_point"`

	RelativeHumidity       int `json:"relative_humidity"`
	IndoorRelativeHumidity int `json:"indoor_relative_humidity"`

	WindSpeed     Measurement `json:"wind_speed"`
	WindGust      Measurement `json:"wind_gust"`
	WindDirection int         `json:"wind_direction"`

	UVIndex     int    `json:"uv_index"`
	UVIndexText string `json:"uv_index_text"`

	CloudCover       int         `json:"cloud_cover"`
	Visibility       Measurement `json:"visibility"`
	Ceiling          Measurement `json:"ceiling"`
	Pressure         Measurement `json:"pressure"`
	PressureTendency string      `json:"pressure_tendency"`

	Precip1Hr                Measurement `json:"precip_1hr"`
	PrecipitationPastHour    Measurement `json:"precipitation_past_hour"`
	PrecipitationPast3Hours  Measurement `json:"precipitation_past_3_hours"`
	PrecipitationPast6Hours  Measurement `json:"precipitation_past_6_hours"`
	PrecipitationPast12Hours Measurement `json:"precipitation_past_12_hours"`
	PrecipitationPast24Hours Measurement `json:"precipitation_past_24_hours"`
}

// ForecastDay is one calendar day of the daily forecast, with day-part and
// night-part values flattened into suffixed fields and the air-and-pollen
// list extracted into named fields.
type ForecastDay struct {
	Date       time.Time `json:"date"`
	HoursOfSun float64   `json:"hours_of_sun"`

	TemperatureMin              Measurement `json:"temperature_min"`
	TemperatureMax              Measurement `json:"temperature_max"`
	RealFeelTemperatureMin      Measurement `json:"real_feel_temperature_min"`
	RealFeelTemperatureMax      Measurement `json:"real_feel_temperature_max"`
	RealFeelTemperatureShadeMin Measurement `json:"real_feel_temperature_shade_min"`
	RealFeelTemperatureShadeMax Measurement `json:"real_feel_temperature_shade_max"`

	// Ozone is synthesized with a nil value when the vendor omits the air
	// quality entry for a day, so the record shape is stable across days.
	Ozone   Measurement `json:"ozone"`
	Grass   Measurement `json:"grass"`
	Mold    Measurement `json:"mold"`
	Ragweed Measurement `json:"ragweed"`
	Tree    Measurement `json:"tree"`
	UVIndex Measurement `json:"uv_index"`

	IconDay                     int         `json:"icon_day"`
	IconPhraseDay               string      `json:"icon_phrase_day"`
	ShortPhraseDay              string      `json:"short_phrase_day"`
	LongPhraseDay               string      `json:"long_phrase_day"`
	HasPrecipitationDay         bool        `json:"has_precipitation_day"`
	PrecipitationTypeDay        *string     `json:"precipitation_type_day"`
	PrecipitationIntensityDay   *string     `json:"precipitation_intensity_day"`
	PrecipitationProbabilityDay int         `json:"precipitation_probability_day"`
	ThunderstormProbabilityDay  int         `json:"thunderstorm_probability_day"`
	RainProbabilityDay          int         `json:"rain_probability_day"`
	SnowProbabilityDay          int         `json:"snow_probability_day"`
	IceProbabilityDay           int         `json:"ice_probability_day"`
	WindSpeedDay                Measurement `json:"wind_speed_day"`
	WindGustDay                 Measurement `json:"wind_gust_day"`
	WindDirectionDay            int         `json:"wind_direction_day"`
	TotalLiquidDay              Measurement `json:"total_liquid_day"`
	RainDay                     Measurement `json:"rain_day"`
	SnowDay                     Measurement `json:"snow_day"`
	IceDay                      Measurement `json:"ice_day"`
	HoursOfPrecipitationDay     float64     `json:"hours_of_precipitation_day"`
	HoursOfRainDay              float64     `json:"hours_of_rain_day"`
	CloudCoverDay               int         `json:"cloud_cover_day"`

	IconNight                     int         `json:"icon_night"`
	IconPhraseNight               string      `json:"icon_phrase_night"`
	ShortPhraseNight              string      `json:"short_phrase_night"`
	LongPhraseNight               string      `json:"long_phrase_night"`
	HasPrecipitationNight         bool        `json:"has_precipitation_night"`
	PrecipitationTypeNight        *string     `json:"precipitation_type_night"`
	PrecipitationIntensityNight   *string     `json:"precipitation_intensity_night"`
	PrecipitationProbabilityNight int         `json:"precipitation_probability_night"`
	ThunderstormProbabilityNight  int         `json:"thunderstorm_probability_night"`
	RainProbabilityNight          int         `json:"rain_probability_night"`
	SnowProbabilityNight          int         `json:"snow_probability_night"`
	IceProbabilityNight           int         `json:"ice_probability_night"`
	WindSpeedNight                Measurement `json:"wind_speed_night"`
	WindGustNight                 Measurement `json:"wind_gust_night"`
	WindDirectionNight            int         `json:"wind_direction_night"`
	TotalLiquidNight              Measurement `json:"total_liquid_night"`
	RainNight                     Measurement `json:"rain_night"`
	SnowNight                     Measurement `json:"snow_night"`
	IceNight                      Measurement `json:"ice_night"`
	HoursOfPrecipitationNight     float64     `json:"hours_of_precipitation_night"`
	HoursOfRainNight              float64     `json:"hours_of_rain_night"`
	CloudCoverNight               int         `json:"cloud_cover_night"`
}

// ForecastHour is one hour slot of the hourly forecast. The vendor payload
// is already flat, so only filtering and lower-casing are applied.
type ForecastHour struct {
	DateTime         time.Time `json:"date_time"`
	IsDaylight       bool      `json:"is_daylight"`
	WeatherIcon      int       `json:"weather_icon"`
	IconPhrase       string    `json:"icon_phrase"`
	HasPrecipitation bool      `json:"has_precipitation"`
	// PrecipitationType is nil unless HasPrecipitation is true.
	PrecipitationType *string `json:"precipitation_type"`

	Temperature         Measurement `json:"temperature"`
	RealFeelTemperature Measurement `json:"real_feel_temperature"`
	WetBulbTemperature  Measurement `json:"wet_bulb_temperature"`
	DewPoint            Measurement `json:"dew_point"`

	RelativeHumidity int `json:"relative_humidity"`

	WindSpeed     Measurement `json:"wind_speed"`
	WindGust      Measurement `json:"wind_gust"`
	WindDirection int         `json:"wind_direction"`

	UVIndex     int    `json:"uv_index"`
	UVIndexText string `json:"uv_index_text"`

	Visibility Measurement `json:"visibility"`
	Ceiling    Measurement `json:"ceiling"`
	CloudCover int         `json:"cloud_cover"`

	PrecipitationProbability int         `json:"precipitation_probability"`
	RainProbability          int         `json:"rain_probability"`
	SnowProbability          int         `json:"snow_probability"`
	IceProbability           int         `json:"ice_probability"`
	TotalLiquid              Measurement `json:"total_liquid"`
	Rain                     Measurement `json:"rain"`
	Snow                     Measurement `json:"snow"`
	Ice                      Measurement `json:"ice"`
}
