package domain

// Current weather at a coordinate as reported by the weather service.
type WeatherSnapshot struct {
	TemperatureC float64
	WindSpeedKmh float64
}

// Represents one round of environmental data for a coordinate.
// Either field may be nil when the corresponding service was unavailable;
// absence is a normal state the resolution step handles, not an error.
type EnvironmentalReading struct {
	Elevation *float64
	Weather   *WeatherSnapshot
}

// Empty reports whether the reading carries no data at all.
func (r EnvironmentalReading) Empty() bool {
	return r.Elevation == nil && r.Weather == nil
}
