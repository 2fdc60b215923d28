package services

import (
	"context"
	"duck-lift-service/internal/domain"
	"duck-lift-service/internal/ports"
	"fmt"
	"log"
)

type RunSimulationRequest struct {
	Coordinates      domain.Coordinates
	Overrides        Overrides
	PayloadMassG     float64
	TargetAltitudeKm float64
	Registry         *domain.Registry
	Custom           *domain.CustomModel
}

type RunSimulationResult struct {
	Context domain.ResolvedContext
	Rows    []domain.ResultRow
}

// RunSimulation performs one full run: fetch environmental data, resolve
// the run context against user overrides, then estimate every active
// lift method.
//
// Provider failure is not fatal here: an unreachable upstream degrades to
// an empty reading, and the run proceeds or fails purely on whether
// resolution can determine both fields. Resolution failure short-circuits
// before any per-mode computation.
func RunSimulation(
	ctx context.Context,
	req RunSimulationRequest,
	provider ports.EnvironmentProvider,
) (*RunSimulationResult, error) {
	if !req.Coordinates.Valid() {
		return nil, fmt.Errorf("run simulation: coordinates out of range (lat=%v lon=%v)", req.Coordinates.Lat, req.Coordinates.Lon)
	}

	var reading domain.EnvironmentalReading
	if provider != nil {
		var err error
		reading, err = provider.Fetch(ctx, req.Coordinates)
		if err != nil {
			// Treat an unavailable provider like an empty reading; the
			// user can still run with overrides.
			log.Printf("environment fetch failed key=%s err=%v", req.Coordinates.CacheKey(), err)
			reading = domain.EnvironmentalReading{}
		}
	}

	resolved, err := ResolveContext(reading, req.Overrides)
	if err != nil {
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	rows := Estimate(SimulationInput{
		Context:          resolved,
		PayloadMassG:     req.PayloadMassG,
		TargetAltitudeKm: req.TargetAltitudeKm,
		Registry:         req.Registry,
		Custom:           req.Custom,
	})

	return &RunSimulationResult{Context: resolved, Rows: rows}, nil
}
