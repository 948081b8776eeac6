package accuweather

import (
	"strings"
	"time"
)

// normalizer accumulates the first schema violation found while a flat
// record is built, so construction reads field by field instead of being
// interleaved with error checks.
type normalizer struct {
	units UnitSystem
	err   error
}

func (n *normalizer) fail(field string) {
	if n.err == nil {
		n.err = missingFieldError(field)
	}
}

// dual reduces a Metric/Imperial pair to the configured branch.
func (n *normalizer) dual(v *rawDualValue, field string) Measurement {
	if v == nil {
		n.fail(field)
		return Measurement{}
	}
	branch := v.Metric
	if n.units == Imperial {
		branch = v.Imperial
	}
	if branch == nil {
		n.fail(field)
		return Measurement{}
	}
	return newMeasurement(branch.Value, branch.UnitType, "")
}

func (n *normalizer) single(v *rawUnitValue, field string) Measurement {
	if v == nil {
		n.fail(field)
		return Measurement{}
	}
	return newMeasurement(v.Value, v.UnitType, "")
}

func (n *normalizer) dualWind(w *rawDualWind, field string) (Measurement, int) {
	if w == nil {
		n.fail(field)
		return Measurement{}, 0
	}
	speed := n.dual(w.Speed, field+".Speed")
	degrees := 0
	if w.Direction != nil {
		degrees = w.Direction.Degrees
	}
	return speed, degrees
}

func (n *normalizer) wind(w *rawWind, field string) (Measurement, int) {
	if w == nil {
		n.fail(field)
		return Measurement{}, 0
	}
	speed := n.single(w.Speed, field+".Speed")
	degrees := 0
	if w.Direction != nil {
		degrees = w.Direction.Degrees
	}
	return speed, degrees
}

func (n *normalizer) intField(v *int, field string) int {
	if v == nil {
		n.fail(field)
		return 0
	}
	return *v
}

func (n *normalizer) epoch(v *int64, field string) time.Time {
	if v == nil {
		n.fail(field)
		return time.Time{}
	}
	return time.Unix(*v, 0).UTC()
}

func (n *normalizer) text(v *string, field string) string {
	if v == nil {
		n.fail(field)
		return ""
	}
	return strings.ToLower(*v)
}

// precipitationType is nil unless precipitation is reported, regardless of
// what the raw field contains.
func precipitationType(hasPrecipitation bool, v *string) *string {
	if !hasPrecipitation || v == nil {
		return nil
	}
	t := strings.ToLower(*v)
	return &t
}

func lowered(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.ToLower(*v)
	return &t
}

// leadingCategory normalizes pollutant categories such as "Low Risk" to
// their leading token, lower-cased.
func leadingCategory(category string) string {
	fields := strings.Fields(category)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func normalizeCurrentConditions(raw *rawCurrentConditions, units UnitSystem) (*CurrentConditions, error) {
	n := &normalizer{units: units}

	precipSummary := raw.PrecipitationSummary
	if precipSummary == nil {
		return nil, missingFieldError("PrecipitationSummary")
	}
	if raw.PressureTendency == nil {
		return nil, missingFieldError("PressureTendency")
	}
	pressureTendency := strings.ToLower(raw.PressureTendency.LocalizedText)

	windSpeed, windDirection := n.dualWind(raw.Wind, "Wind")
	windGust, _ := n.dualWind(raw.WindGust, "WindGust")

	current := &CurrentConditions{
		DateTime:          n.epoch(raw.EpochTime, "EpochTime"),
		IsDayTime:         raw.IsDayTime,
		WeatherIcon:       raw.WeatherIcon,
		WeatherText:       n.text(raw.WeatherText, "WeatherText"),
		HasPrecipitation:  raw.HasPrecipitation,
		PrecipitationType: precipitationType(raw.HasPrecipitation, raw.PrecipitationType),

		Temperature:              n.dual(raw.Temperature, "Temperature"),
		RealFeelTemperature:      n.dual(raw.RealFeelTemperature, "RealFeelTemperature"),
		RealFeelTemperatureShade: n.dual(raw.RealFeelTemperatureShade, "RealFeelTemperatureShade"),
		ApparentTemperature:      n.dual(raw.ApparentTemperature, "ApparentTemperature"),
		WindChillTemperature:     n.dual(raw.WindChillTemperature, "WindChillTemperature"),
		WetBulbTemperature:       n.dual(raw.WetBulbTemperature, "WetBulbTemperature"),
		DewPoint:                 n.dual(raw.DewPoint, "DewPoint"),

		RelativeHumidity:       n.intField(raw.RelativeHumidity, "RelativeHumidity"),
		IndoorRelativeHumidity: raw.IndoorRelativeHumidity,

		WindSpeed:     windSpeed,
		WindGust:      windGust,
		WindDirection: windDirection,

		UVIndex:     n.intField(raw.UVIndex, "UVIndex"),
		UVIndexText: n.text(raw.UVIndexText, "UVIndexText"),

		CloudCover:       n.intField(raw.CloudCover, "CloudCover"),
		Visibility:       n.dual(raw.Visibility, "Visibility"),
		Ceiling:          n.dual(raw.Ceiling, "Ceiling"),
		Pressure:         n.dual(raw.Pressure, "Pressure"),
		PressureTendency: pressureTendency,

		Precip1Hr:                n.dual(raw.Precip1Hr, "Precip1hr"),
		PrecipitationPastHour:    n.dual(precipSummary.PastHour, "PrecipitationSummary.PastHour"),
		PrecipitationPast3Hours:  n.dual(precipSummary.Past3Hours, "PrecipitationSummary.Past3Hours"),
		PrecipitationPast6Hours:  n.dual(precipSummary.Past6Hours, "PrecipitationSummary.Past6Hours"),
		PrecipitationPast12Hours: n.dual(precipSummary.Past12Hours, "PrecipitationSummary.Past12Hours"),
		PrecipitationPast24Hours: n.dual(precipSummary.Past24Hours, "PrecipitationSummary.Past24Hours"),
	}

	if n.err != nil {
		return nil, n.err
	}
	return current, nil
}

func normalizeDailyForecast(raw *rawDailyForecast) ([]ForecastDay, error) {
	if raw.DailyForecasts == nil {
		return nil, missingFieldError("DailyForecasts")
	}
	days := make([]ForecastDay, 0, len(raw.DailyForecasts))
	for _, item := range raw.DailyForecasts {
		day, err := normalizeForecastDay(item)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func normalizeForecastDay(raw rawForecastDay) (ForecastDay, error) {
	n := &normalizer{}

	day := ForecastDay{
		Date:       n.epoch(raw.EpochDate, "EpochDate"),
		HoursOfSun: raw.HoursOfSun,
	}

	day.TemperatureMin, day.TemperatureMax = n.minMax(raw.Temperature, "Temperature")
	day.RealFeelTemperatureMin, day.RealFeelTemperatureMax = n.minMax(raw.RealFeelTemperature, "RealFeelTemperature")
	day.RealFeelTemperatureShadeMin, day.RealFeelTemperatureShadeMax = n.minMax(raw.RealFeelTemperatureShade, "RealFeelTemperatureShade")

	if raw.AirAndPollen == nil {
		return ForecastDay{}, missingFieldError("AirAndPollen")
	}
	for _, item := range raw.AirAndPollen {
		value := Measurement{Value: item.Value, Text: leadingCategory(item.Category)}
		switch item.Name {
		case "AirQuality":
			// The entry's Type names the pollutant, in practice "Ozone".
			day.Ozone = value
		case "Grass":
			day.Grass = value
		case "Mold":
			day.Mold = value
		case "Ragweed":
			day.Ragweed = value
		case "Tree":
			day.Tree = value
		case "UVIndex":
			day.UVIndex = value
		}
	}
	// Ozone is left as a nil-value placeholder when the vendor omits the
	// air quality entry for this day.

	if raw.Day == nil {
		return ForecastDay{}, missingFieldError("Day")
	}
	if raw.Night == nil {
		return ForecastDay{}, missingFieldError("Night")
	}

	day.IconDay = raw.Day.Icon
	day.IconPhraseDay = strings.ToLower(raw.Day.IconPhrase)
	day.ShortPhraseDay = raw.Day.ShortPhrase
	day.LongPhraseDay = raw.Day.LongPhrase
	day.HasPrecipitationDay = raw.Day.HasPrecipitation
	day.PrecipitationTypeDay = lowered(raw.Day.PrecipitationType)
	day.PrecipitationIntensityDay = lowered(raw.Day.PrecipitationIntensity)
	day.PrecipitationProbabilityDay = raw.Day.PrecipitationProbability
	day.ThunderstormProbabilityDay = raw.Day.ThunderstormProbability
	day.RainProbabilityDay = raw.Day.RainProbability
	day.SnowProbabilityDay = raw.Day.SnowProbability
	day.IceProbabilityDay = raw.Day.IceProbability
	day.WindSpeedDay, day.WindDirectionDay = n.wind(raw.Day.Wind, "Day.Wind")
	day.WindGustDay, _ = n.wind(raw.Day.WindGust, "Day.WindGust")
	day.TotalLiquidDay = n.single(raw.Day.TotalLiquid, "Day.TotalLiquid")
	day.RainDay = n.single(raw.Day.Rain, "Day.Rain")
	day.SnowDay = n.single(raw.Day.Snow, "Day.Snow")
	day.IceDay = n.single(raw.Day.Ice, "Day.Ice")
	day.HoursOfPrecipitationDay = raw.Day.HoursOfPrecipitation
	day.HoursOfRainDay = raw.Day.HoursOfRain
	day.CloudCoverDay = raw.Day.CloudCover

	day.IconNight = raw.Night.Icon
	day.IconPhraseNight = strings.ToLower(raw.Night.IconPhrase)
	day.ShortPhraseNight = raw.Night.ShortPhrase
	day.LongPhraseNight = raw.Night.LongPhrase
	day.HasPrecipitationNight = raw.Night.HasPrecipitation
	day.PrecipitationTypeNight = lowered(raw.Night.PrecipitationType)
	day.PrecipitationIntensityNight = lowered(raw.Night.PrecipitationIntensity)
	day.PrecipitationProbabilityNight = raw.Night.PrecipitationProbability
	day.ThunderstormProbabilityNight = raw.Night.ThunderstormProbability
	day.RainProbabilityNight = raw.Night.RainProbability
	day.SnowProbabilityNight = raw.Night.SnowProbability
	day.IceProbabilityNight = raw.Night.IceProbability
	day.WindSpeedNight, day.WindDirectionNight = n.wind(raw.Night.Wind, "Night.Wind")
	day.WindGustNight, _ = n.wind(raw.Night.WindGust, "Night.WindGust")
	day.TotalLiquidNight = n.single(raw.Night.TotalLiquid, "Night.TotalLiquid")
	day.RainNight = n.single(raw.Night.Rain, "Night.Rain")
	day.SnowNight = n.single(raw.Night.Snow, "Night.Snow")
	day.IceNight = n.single(raw.Night.Ice, "Night.Ice")
	day.HoursOfPrecipitationNight = raw.Night.HoursOfPrecipitation
	day.HoursOfRainNight = raw.Night.HoursOfRain
	day.CloudCoverNight = raw.Night.CloudCover

	if n.err != nil {
		return ForecastDay{}, n.err
	}
	return day, nil
}

func (n *normalizer) minMax(v *rawMinMax, field string) (Measurement, Measurement) {
	if v == nil {
		n.fail(field)
		return Measurement{}, Measurement{}
	}
	return n.single(v.Minimum, field+".Minimum"), n.single(v.Maximum, field+".Maximum")
}

func normalizeHourlyForecast(raw []rawForecastHour) ([]ForecastHour, error) {
	hours := make([]ForecastHour, 0, len(raw))
	for _, item := range raw {
		hour, err := normalizeForecastHour(item)
		if err != nil {
			return nil, err
		}
		hours = append(hours, hour)
	}
	return hours, nil
}

func normalizeForecastHour(raw rawForecastHour) (ForecastHour, error) {
	n := &normalizer{}

	windSpeed, windDirection := n.wind(raw.Wind, "Wind")
	windGust, _ := n.wind(raw.WindGust, "WindGust")

	hour := ForecastHour{
		DateTime:          n.epoch(raw.EpochDateTime, "EpochDateTime"),
		IsDaylight:        raw.IsDaylight,
		WeatherIcon:       raw.WeatherIcon,
		IconPhrase:        n.text(raw.IconPhrase, "IconPhrase"),
		HasPrecipitation:  raw.HasPrecipitation,
		PrecipitationType: precipitationType(raw.HasPrecipitation, raw.PrecipitationType),

		Temperature:         n.single(raw.Temperature, "Temperature"),
		RealFeelTemperature: n.single(raw.RealFeelTemperature, "RealFeelTemperature"),
		WetBulbTemperature:  n.single(raw.WetBulbTemperature, "WetBulbTemperature"),
		DewPoint:            n.single(raw.DewPoint, "DewPoint"),

		RelativeHumidity: n.intField(raw.RelativeHumidity, "RelativeHumidity"),

		WindSpeed:     windSpeed,
		WindGust:      windGust,
		WindDirection: windDirection,

		UVIndex:     n.intField(raw.UVIndex, "UVIndex"),
		UVIndexText: n.text(raw.UVIndexText, "UVIndexText"),

		Visibility: n.single(raw.Visibility, "Visibility"),
		Ceiling:    n.single(raw.Ceiling, "Ceiling"),
		CloudCover: raw.CloudCover,

		PrecipitationProbability: raw.PrecipitationProbability,
		RainProbability:          raw.RainProbability,
		SnowProbability:          raw.SnowProbability,
		IceProbability:           raw.IceProbability,
		TotalLiquid:              n.single(raw.TotalLiquid, "TotalLiquid"),
		Rain:                     n.single(raw.Rain, "Rain"),
		Snow:                     n.single(raw.Snow, "Snow"),
		Ice:                      n.single(raw.Ice, "Ice"),
	}

	if n.err != nil {
		return ForecastHour{}, n.err
	}
	return hour, nil
}
