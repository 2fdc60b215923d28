package services

import (
	"context"
	"duck-lift-service/internal/adapters/environment"
	"duck-lift-service/internal/domain"
	"errors"
	"testing"
)

func TestRunSimulationWithFetchedReading(t *testing.T) {
	provider := environment.NewMockProvider(map[string]domain.EnvironmentalReading{
		"40.7128,-74.0060": {
			Elevation: f64(10),
			Weather:   &domain.WeatherSnapshot{TemperatureC: 20, WindSpeedKmh: 5},
		},
	})

	res, err := RunSimulation(context.Background(), RunSimulationRequest{
		Coordinates:      domain.Coordinates{Lat: 40.7128, Lon: -74.006},
		PayloadMassG:     10,
		TargetAltitudeKm: 1,
		Registry:         domain.DefaultRegistry(),
	}, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Context.BaseElevationM != 10 || res.Context.WeatherFactor != 1.0 {
		t.Errorf("resolved context = %+v, want elevation 10, factor 1.0", res.Context)
	}
	if len(res.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(res.Rows))
	}
	if res.Rows[2].ModeName != "Drone" || res.Rows[2].EstimatedCostUSD != 20.65 {
		t.Errorf("Drone row = %+v, want cost 20.65", res.Rows[2])
	}
}

func TestRunSimulationProviderFailureDegradesToOverrides(t *testing.T) {
	provider := environment.NewMockProvider(nil) // every fetch errors

	res, err := RunSimulation(context.Background(), RunSimulationRequest{
		Coordinates: domain.Coordinates{Lat: 1, Lon: 1},
		Overrides: Overrides{
			ElevationSet: true, ElevationM: 50,
			WeatherSet: true, WeatherFactor: 0.9,
		},
		PayloadMassG:     10,
		TargetAltitudeKm: 2,
		Registry:         domain.DefaultRegistry(),
	}, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Context.BaseElevationM != 50 {
		t.Errorf("BaseElevationM = %v, want 50", res.Context.BaseElevationM)
	}
}

func TestRunSimulationProviderFailureWithoutOverrides(t *testing.T) {
	provider := environment.NewMockProvider(nil)

	_, err := RunSimulation(context.Background(), RunSimulationRequest{
		Coordinates: domain.Coordinates{Lat: 1, Lon: 1},
		Registry:    domain.DefaultRegistry(),
	}, provider)
	if !errors.Is(err, ErrMissingElevation) || !errors.Is(err, ErrMissingWeather) {
		t.Fatalf("err = %v, want both missing-field failures", err)
	}
}

func TestRunSimulationRejectsBadCoordinates(t *testing.T) {
	provider := environment.NewMockProvider(nil)

	_, err := RunSimulation(context.Background(), RunSimulationRequest{
		Coordinates: domain.Coordinates{Lat: 95, Lon: 0},
	}, provider)
	if err == nil {
		t.Fatal("expected error for latitude out of range")
	}
}
