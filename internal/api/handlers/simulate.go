package handlers

import (
	"duck-lift-service/internal/api/dto"
	"duck-lift-service/internal/domain"
	"duck-lift-service/internal/ports"
	"duck-lift-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

type SimulateHandler struct {
	Provider ports.EnvironmentProvider
	// Preset models in presentation order; per-request edits never touch them.
	Models []domain.TransportModel
}

// Simulate orchestrates one estimation run: it validates the collected
// configuration, builds the per-request registry, and delegates to the
// simulation service.
func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SimulateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	coord := domain.Coordinates{Lat: req.Latitude, Lon: req.Longitude}
	if !coord.Valid() {
		writeError(w, r, http.StatusBadRequest, "latitude must be in [-90,90] and longitude in [-180,180]")
		return
	}

	mass := req.PayloadMassG
	if mass == 0 {
		mass = 10
	}
	if mass <= 0 {
		writeError(w, r, http.StatusBadRequest, "payload_mass_g must be positive")
		return
	}

	if req.TargetAltitudeKm < 0 || req.TargetAltitudeKm > 30 {
		writeError(w, r, http.StatusBadRequest, "target_altitude_km must be between 0 and 30")
		return
	}

	if req.OverrideWeather && (req.ManualWeatherFactor < 0.5 || req.ManualWeatherFactor > 1.5) {
		writeError(w, r, http.StatusBadRequest, "manual_weather_factor must be between 0.5 and 1.5")
		return
	}

	registry, err := h.buildRegistry(req.Models)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var custom *domain.CustomModel
	if req.IncludeCustom {
		if req.Custom == nil {
			writeError(w, r, http.StatusBadRequest, "include_custom requires a custom model")
			return
		}
		custom, err = buildCustomModel(*req.Custom)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	svcReq := services.RunSimulationRequest{
		Coordinates: coord,
		Overrides: services.Overrides{
			ElevationSet:  req.OverrideElevation,
			ElevationM:    req.ManualElevationM,
			WeatherSet:    req.OverrideWeather,
			WeatherFactor: req.ManualWeatherFactor,
		},
		PayloadMassG:     mass,
		TargetAltitudeKm: req.TargetAltitudeKm,
		Registry:         registry,
		Custom:           custom,
	}

	result, err := services.RunSimulation(r.Context(), svcReq, h.Provider)
	if err != nil {
		if errors.Is(err, services.ErrMissingElevation) || errors.Is(err, services.ErrMissingWeather) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("run simulation failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SimulateResponse{
		BaseElevationM: result.Context.BaseElevationM,
		WeatherFactor:  result.Context.WeatherFactor,
		WindSpeedKmh:   result.Context.WindSpeedKmh,
		Rows:           make([]dto.ResultRowResponse, 0, len(result.Rows)),
	}
	for _, row := range result.Rows {
		res.Rows = append(res.Rows, dto.ResultRowResponse{
			Mode:             row.ModeName,
			FinalElevationM:  row.FinalElevationM,
			EstimatedCostUSD: row.EstimatedCostUSD,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// buildRegistry seeds a per-request registry from the presets, then applies
// the caller's parameter edits. Unknown names become additional modes.
func (h *SimulateHandler) buildRegistry(edits []dto.ModelParams) (*domain.Registry, error) {
	registry := domain.NewRegistry()
	for _, m := range h.Models {
		if err := registry.Add(m); err != nil {
			return nil, fmt.Errorf("invalid preset %q: %v", m.Name, err)
		}
	}

	for _, e := range edits {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, errors.New("model name must be non-empty")
		}
		if e.BaseCost < 0 || e.CostPerGram < 0 || e.CostPerKm < 0 {
			return nil, fmt.Errorf("model %q: costs must be non-negative", name)
		}
		if e.Efficiency <= 0 {
			return nil, fmt.Errorf("model %q: efficiency must be positive", name)
		}

		err := registry.Upsert(domain.TransportModel{
			Name:        name,
			BaseCost:    e.BaseCost,
			CostPerGram: e.CostPerGram,
			CostPerKm:   e.CostPerKm,
			Efficiency:  e.Efficiency,
		})
		if err != nil {
			return nil, fmt.Errorf("model %q: %v", name, err)
		}
	}

	return registry, nil
}

func buildCustomModel(p dto.CustomModelParams) (*domain.CustomModel, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "Custom Method"
	}
	if p.BaseCost < 0 || p.CostPerGram < 0 || p.CostPerKm < 0 {
		return nil, errors.New("custom model: costs must be non-negative")
	}
	if p.Efficiency <= 0 {
		return nil, errors.New("custom model: efficiency must be positive")
	}
	if p.SetupTimeHours < 0 || p.LaborRate < 0 || p.MaterialFactor < 0 {
		return nil, errors.New("custom model: setup time, labor rate and material factor must be non-negative")
	}
	if p.OverheadFactor < 1 {
		return nil, errors.New("custom model: overhead_factor must be at least 1")
	}
	if p.WindSensitivity < 0 || p.WindSensitivity > 1 {
		return nil, errors.New("custom model: wind_sensitivity must be between 0 and 1")
	}

	return &domain.CustomModel{
		TransportModel: domain.TransportModel{
			Name:        name,
			BaseCost:    p.BaseCost,
			CostPerGram: p.CostPerGram,
			CostPerKm:   p.CostPerKm,
			Efficiency:  p.Efficiency,
		},
		SetupTimeHours:  p.SetupTimeHours,
		LaborRate:       p.LaborRate,
		MaterialFactor:  p.MaterialFactor,
		OverheadFactor:  p.OverheadFactor,
		WindSensitivity: p.WindSensitivity,
	}, nil
}
