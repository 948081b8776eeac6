package accuweather

// Vendor payload shapes. Required sub-objects are pointers so the normalizer
// can detect schema drift instead of silently defaulting.

type rawUnitValue struct {
	Value    *float64 `json:"Value"`
	Unit     string   `json:"Unit"`
	UnitType *int     `json:"UnitType"`
}

// rawDualValue carries the parallel Metric/Imperial branches returned for
// current conditions.
type rawDualValue struct {
	Metric   *rawUnitValue `json:"Metric"`
	Imperial *rawUnitValue `json:"Imperial"`
}

type rawDirection struct {
	Degrees   int    `json:"Degrees"`
	Localized string `json:"Localized"`
	English   string `json:"English"`
}

type rawDualWind struct {
	Direction *rawDirection `json:"Direction"`
	Speed     *rawDualValue `json:"Speed"`
}

type rawWind struct {
	Direction *rawDirection `json:"Direction"`
	Speed     *rawUnitValue `json:"Speed"`
}

type rawPressureTendency struct {
	LocalizedText string `json:"LocalizedText"`
	Code          string `json:"Code"`
}

type rawPrecipitationSummary struct {
	Precipitation *rawDualValue `json:"Precipitation"`
	PastHour      *rawDualValue `json:"PastHour"`
	Past3Hours    *rawDualValue `json:"Past3Hours"`
	Past6Hours    *rawDualValue `json:"Past6Hours"`
	Past9Hours    *rawDualValue `json:"Past9Hours"`
	Past12Hours   *rawDualValue `json:"Past12Hours"`
	Past18Hours   *rawDualValue `json:"Past18Hours"`
	Past24Hours   *rawDualValue `json:"Past24Hours"`
}

type rawLocation struct {
	Key           *string `json:"Key"`
	LocalizedName *string `json:"LocalizedName"`
}

type rawCurrentConditions struct {
	EpochTime                *int64                   `json:"EpochTime"`
	WeatherText              *string                  `json:"WeatherText"`
	WeatherIcon              int                      `json:"WeatherIcon"`
	HasPrecipitation         bool                     `json:"HasPrecipitation"`
	PrecipitationType        *string                  `json:"PrecipitationType"`
	IsDayTime                bool                     `json:"IsDayTime"`
	Temperature              *rawDualValue            `json:"Temperature"`
	RealFeelTemperature      *rawDualValue            `json:"RealFeelTemperature"`
	RealFeelTemperatureShade *rawDualValue            `json:"RealFeelTemperatureShade"`
	ApparentTemperature      *rawDualValue            `json:"ApparentTemperature"`
	WindChillTemperature     *rawDualValue            `json:"WindChillTemperature"`
	WetBulbTemperature       *rawDualValue            `json:"WetBulbTemperature"`
	DewPoint                 *rawDualValue            `json:"DewPoint"`
	RelativeHumidity         *int                     `json:"RelativeHumidity"`
	IndoorRelativeHumidity   int                      `json:"IndoorRelativeHumidity"`
	Wind                     *rawDualWind             `json:"Wind"`
	WindGust                 *rawDualWind             `json:"WindGust"`
	UVIndex                  *int                     `json:"UVIndex"`
	UVIndexText              *string                  `json:"UVIndexText"`
	CloudCover               *int                     `json:"CloudCover"`
	Visibility               *rawDualValue            `json:"Visibility"`
	Ceiling                  *rawDualValue            `json:"Ceiling"`
	Pressure                 *rawDualValue            `json:"Pressure"`
	PressureTendency         *rawPressureTendency     `json:"PressureTendency"`
	Precip1Hr                *rawDualValue            `json:"Precip1hr"`
	PrecipitationSummary     *rawPrecipitationSummary `json:"PrecipitationSummary"`
}

type rawMinMax struct {
	Minimum *rawUnitValue `json:"Minimum"`
	Maximum *rawUnitValue `json:"Maximum"`
}

type rawAirAndPollen struct {
	Name          string   `json:"Name"`
	Value         *float64 `json:"Value"`
	Category      string   `json:"Category"`
	CategoryValue int      `json:"CategoryValue"`
	Type          string   `json:"Type"`
}

type rawDayPart struct {
	Icon                     int           `json:"Icon"`
	IconPhrase               string        `json:"IconPhrase"`
	HasPrecipitation         bool          `json:"HasPrecipitation"`
	PrecipitationType        *string       `json:"PrecipitationType"`
	PrecipitationIntensity   *string       `json:"PrecipitationIntensity"`
	ShortPhrase              string        `json:"ShortPhrase"`
	LongPhrase               string        `json:"LongPhrase"`
	PrecipitationProbability int           `json:"PrecipitationProbability"`
	ThunderstormProbability  int           `json:"ThunderstormProbability"`
	RainProbability          int           `json:"RainProbability"`
	SnowProbability          int           `json:"SnowProbability"`
	IceProbability           int           `json:"IceProbability"`
	Wind                     *rawWind      `json:"Wind"`
	WindGust                 *rawWind      `json:"WindGust"`
	TotalLiquid              *rawUnitValue `json:"TotalLiquid"`
	Rain                     *rawUnitValue `json:"Rain"`
	Snow                     *rawUnitValue `json:"Snow"`
	Ice                      *rawUnitValue `json:"Ice"`
	HoursOfPrecipitation     float64       `json:"HoursOfPrecipitation"`
	HoursOfRain              float64       `json:"HoursOfRain"`
	CloudCover               int           `json:"CloudCover"`
}

type rawForecastDay struct {
	EpochDate                *int64            `json:"EpochDate"`
	HoursOfSun               float64           `json:"HoursOfSun"`
	Temperature              *rawMinMax        `json:"Temperature"`
	RealFeelTemperature      *rawMinMax        `json:"RealFeelTemperature"`
	RealFeelTemperatureShade *rawMinMax        `json:"RealFeelTemperatureShade"`
	AirAndPollen             []rawAirAndPollen `json:"AirAndPollen"`
	Day                      *rawDayPart       `json:"Day"`
	Night                    *rawDayPart       `json:"Night"`
}

type rawDailyForecast struct {
	DailyForecasts []rawForecastDay `json:"DailyForecasts"`
}

type rawForecastHour struct {
	EpochDateTime            *int64        `json:"EpochDateTime"`
	WeatherIcon              int           `json:"WeatherIcon"`
	IconPhrase               *string       `json:"IconPhrase"`
	HasPrecipitation         bool          `json:"HasPrecipitation"`
	PrecipitationType        *string       `json:"PrecipitationType"`
	IsDaylight               bool          `json:"IsDaylight"`
	Temperature              *rawUnitValue `json:"Temperature"`
	RealFeelTemperature      *rawUnitValue `json:"RealFeelTemperature"`
	WetBulbTemperature       *rawUnitValue `json:"WetBulbTemperature"`
	DewPoint                 *rawUnitValue `json:"DewPoint"`
	RelativeHumidity         *int          `json:"RelativeHumidity"`
	Wind                     *rawWind      `json:"Wind"`
	WindGust                 *rawWind      `json:"WindGust"`
	UVIndex                  *int          `json:"UVIndex"`
	UVIndexText              *string       `json:"UVIndexText"`
	Visibility               *rawUnitValue `json:"Visibility"`
	Ceiling                  *rawUnitValue `json:"Ceiling"`
	CloudCover               int           `json:"CloudCover"`
	PrecipitationProbability int           `json:"PrecipitationProbability"`
	RainProbability          int           `json:"RainProbability"`
	SnowProbability          int           `json:"SnowProbability"`
	IceProbability           int           `json:"IceProbability"`
	TotalLiquid              *rawUnitValue `json:"TotalLiquid"`
	Rain                     *rawUnitValue `json:"Rain"`
	Snow                     *rawUnitValue `json:"Snow"`
	Ice                      *rawUnitValue `json:"Ice"`
}

type rawError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}
