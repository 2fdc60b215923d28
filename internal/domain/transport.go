package domain

// Parameter bundle for one built-in lift method.
// Costs are USD; efficiency scales altitude gain per requested km.
type TransportModel struct {
	Name        string
	BaseCost    float64
	CostPerGram float64
	CostPerKm   float64
	Efficiency  float64
}

// User-defined lift method with the extended cost and wind-penalty model.
// At most one custom model participates in a run, and only when the
// caller explicitly enables it.
type CustomModel struct {
	TransportModel
	SetupTimeHours  float64
	LaborRate       float64
	MaterialFactor  float64
	OverheadFactor  float64
	WindSensitivity float64
}

// Resolved per-run parameters the estimation formulas consume.
// Built once per simulation from the environmental reading and/or user
// overrides and never mutated afterwards. WindSpeedKmh keeps the raw wind
// reading for the custom model's penalty even when the factor was overridden.
type ResolvedContext struct {
	BaseElevationM float64
	WeatherFactor  float64
	WindSpeedKmh   float64
}

// One output row per active lift method. Values are rounded for
// presentation; the engine computes at full precision internally.
type ResultRow struct {
	ModeName         string
	FinalElevationM  float64
	EstimatedCostUSD float64
}
