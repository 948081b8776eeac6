package accuweather

// UnitSystem selects which branch of the vendor's parallel Metric/Imperial
// values is extracted, and the metric flag sent on forecast requests.
type UnitSystem int

const (
	Metric UnitSystem = iota
	Imperial
)

func (u UnitSystem) String() string {
	if u == Imperial {
		return "Imperial"
	}
	return "Metric"
}

// metricFlag is the stringified value of the metric query parameter.
func (u UnitSystem) metricFlag() string {
	if u == Imperial {
		return "false"
	}
	return "true"
}

// unitMap translates AccuWeather numeric unit types into display units.
var unitMap = map[int]string{
	0:  "ft",
	1:  "in",
	2:  "mi",
	3:  "mm",
	4:  "cm",
	5:  "m",
	6:  "km",
	7:  "km/h",
	8:  "kn",
	9:  "mi/h",
	10: "m/s",
	11: "hPa",
	12: "inHg",
	13: "kPa",
	14: "mb",
	15: "mmHg",
	17: "°C",
	18: "°F",
	19: "K",
	20: "%",
	21: "float",
	22: "int",
}

// unitFromType resolves a unit type to its display unit. Unknown or absent
// unit types resolve to an empty string.
func unitFromType(unitType *int) string {
	if unitType == nil {
		return ""
	}
	return unitMap[*unitType]
}
