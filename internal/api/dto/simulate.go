package dto

type ModelParams struct {
	Name        string  `json:"name"`
	BaseCost    float64 `json:"base_cost"`
	CostPerGram float64 `json:"cost_per_gram"`
	CostPerKm   float64 `json:"cost_per_km"`
	Efficiency  float64 `json:"efficiency"`
}

type CustomModelParams struct {
	ModelParams
	SetupTimeHours  float64 `json:"setup_time_hours"`
	LaborRate       float64 `json:"labor_rate"`
	MaterialFactor  float64 `json:"material_factor"`
	OverheadFactor  float64 `json:"overhead_factor"`
	WindSensitivity float64 `json:"wind_sensitivity"`
}

type SimulateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	OverrideElevation   bool    `json:"override_elevation"`
	ManualElevationM    float64 `json:"manual_elevation_m"`
	OverrideWeather     bool    `json:"override_weather"`
	ManualWeatherFactor float64 `json:"manual_weather_factor"`

	PayloadMassG     float64 `json:"payload_mass_g"`
	TargetAltitudeKm float64 `json:"target_altitude_km"`

	// Optional per-mode parameter edits; unnamed modes keep their presets.
	Models []ModelParams `json:"models"`

	Custom        *CustomModelParams `json:"custom"`
	IncludeCustom bool               `json:"include_custom"`
}

type ResultRowResponse struct {
	Mode             string  `json:"mode"`
	FinalElevationM  float64 `json:"final_elevation_m"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
}

type SimulateResponse struct {
	BaseElevationM float64             `json:"base_elevation_m"`
	WeatherFactor  float64             `json:"weather_factor"`
	WindSpeedKmh   float64             `json:"wind_speed_kmh"`
	Rows           []ResultRowResponse `json:"rows"`
}
