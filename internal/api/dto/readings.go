package dto

type WeatherResponse struct {
	TemperatureC float64 `json:"temperature_c"`
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
}

// Either field is null when the corresponding service had no data.
type ReadingResponse struct {
	ElevationM *float64         `json:"elevation_m"`
	Weather    *WeatherResponse `json:"weather"`
}
