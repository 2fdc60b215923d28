package services

import (
	"duck-lift-service/internal/domain"
	"errors"
	"fmt"
)

// Resolution failures. A run must not start from a zero or garbage default,
// so each undetermined field is a hard error the user resolves by fetching
// data or supplying an override.
var (
	ErrMissingElevation = errors.New("no base elevation available: fetch environmental data or supply an elevation override")
	ErrMissingWeather   = errors.New("no weather data available: fetch environmental data or supply a weather factor override")
)

// Per-field manual overrides collected at the boundary. A value applies
// only when its flag is set; a set flag wins over any fetched reading.
type Overrides struct {
	ElevationSet  bool
	ElevationM    float64
	WeatherSet    bool
	WeatherFactor float64
}

// ResolveContext decides which of {fetched reading, user override} is
// authoritative for base elevation and weather factor.
//
// The two fields resolve independently; when both are undetermined the
// returned error reports both conditions (errors.Is matches each sentinel).
func ResolveContext(reading domain.EnvironmentalReading, ov Overrides) (domain.ResolvedContext, error) {
	var ctx domain.ResolvedContext
	var missing []error

	switch {
	case ov.ElevationSet:
		ctx.BaseElevationM = ov.ElevationM
	case reading.Elevation != nil:
		ctx.BaseElevationM = *reading.Elevation
	default:
		missing = append(missing, ErrMissingElevation)
	}

	// The raw wind speed is retained whenever a weather reading exists,
	// even under an override: the custom model's wind penalty uses it.
	if reading.Weather != nil {
		ctx.WindSpeedKmh = reading.Weather.WindSpeedKmh
	}

	switch {
	case ov.WeatherSet:
		ctx.WeatherFactor = ov.WeatherFactor
	case reading.Weather != nil:
		ctx.WeatherFactor = WeatherFactor(reading.Weather.WindSpeedKmh)
	default:
		missing = append(missing, ErrMissingWeather)
	}

	if len(missing) > 0 {
		return domain.ResolvedContext{}, fmt.Errorf("resolve context: %w", errors.Join(missing...))
	}
	return ctx, nil
}
