package accuweather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitFromType(t *testing.T) {
	celsius := 17
	fahrenheit := 18
	percent := 20
	unknown := 99

	assert.Equal(t, "°C", unitFromType(&celsius))
	assert.Equal(t, "°F", unitFromType(&fahrenheit))
	assert.Equal(t, "%", unitFromType(&percent))
	assert.Equal(t, "", unitFromType(&unknown))
	assert.Equal(t, "", unitFromType(nil))
}

func TestUnitSystemMetricFlag(t *testing.T) {
	assert.Equal(t, "true", Metric.metricFlag())
	assert.Equal(t, "false", Imperial.metricFlag())
}

func TestNewMeasurementDerivesUnit(t *testing.T) {
	value := 0.6
	unitType := 17

	m := newMeasurement(&value, &unitType, "Mostly Cloudy")

	assert.Equal(t, 0.6, *m.Value)
	assert.Equal(t, 17, *m.UnitType)
	assert.Equal(t, "°C", m.Unit)
	assert.Equal(t, "mostly cloudy", m.Text)
}
