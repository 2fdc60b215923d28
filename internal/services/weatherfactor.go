package services

// WeatherFactor maps wind speed (km/h) to the lift efficiency multiplier.
//
// The mapping is piecewise constant with right-open intervals breaking at
// 10 and 20 km/h. Callers guard against negative wind speeds; wind is
// physically non-negative.
func WeatherFactor(windSpeedKmh float64) float64 {
	switch {
	case windSpeedKmh < 10:
		return 1.0
	case windSpeedKmh < 20:
		return 0.9
	default:
		return 0.8
	}
}
