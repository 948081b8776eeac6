package accuweather

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"empty", "", false},
		{"too short", "abcdef", false},
		{"31 characters", strings.Repeat("a", 31), false},
		{"exactly 32 characters", strings.Repeat("a", 32), true},
		{"32 non-hex characters", "32-character-string-1234567890qw", true},
		{"33 characters", strings.Repeat("a", 33), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validAPIKey(tt.apiKey))
		})
	}
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"valid", 52.0677904, 19.4795644, true},
		{"zero zero", 0, 0, true},
		{"latitude boundary", 90, 19.5, true},
		{"longitude boundary", 52.1, 180, true},
		{"negative boundaries", -90, -180, true},
		{"latitude just over", 90.0001, 19.5, false},
		{"longitude just over", 52.1, 180.0001, false},
		{"latitude far over", 199.99, 90, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validCoordinates(tt.lat, tt.lon))
		})
	}
}
