package accuweather

const (
	apiKeyLength = 32
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// validAPIKey reports whether the key has the required length. The service
// documents keys as 32-character hexadecimal strings but only the length is
// enforced, matching the service's own acceptance behavior.
func validAPIKey(apiKey string) bool {
	return len(apiKey) == apiKeyLength
}

// validCoordinates reports whether the pair is within the valid range.
func validCoordinates(latitude, longitude float64) bool {
	return abs(latitude) <= maxLatitude && abs(longitude) <= maxLongitude
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
