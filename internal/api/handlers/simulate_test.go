package handlers

import (
	"duck-lift-service/internal/adapters/environment"
	"duck-lift-service/internal/api/dto"
	"duck-lift-service/internal/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newSimulateHandler(readings map[string]domain.EnvironmentalReading) *SimulateHandler {
	return &SimulateHandler{
		Provider: environment.NewMockProvider(readings),
		Models:   domain.DefaultRegistry().Models(),
	}
}

func postSimulation(t *testing.T, h *SimulateHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/simulations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Simulate(rec, req)
	return rec
}

func TestSimulateHandlerWithOverrides(t *testing.T) {
	h := newSimulateHandler(nil)

	body := `{
		"latitude": 40.7128, "longitude": -74.006,
		"override_elevation": true, "manual_elevation_m": 10,
		"override_weather": true, "manual_weather_factor": 1.0,
		"payload_mass_g": 10, "target_altitude_km": 1
	}`
	rec := postSimulation(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.SimulateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.BaseElevationM != 10 || res.WeatherFactor != 1.0 {
		t.Errorf("resolved context = %+v", res)
	}
	if len(res.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(res.Rows))
	}
	if res.Rows[2].Mode != "Drone" || res.Rows[2].FinalElevationM != 1310.0 || res.Rows[2].EstimatedCostUSD != 20.65 {
		t.Errorf("Drone row = %+v, want 1310.0 m / 20.65 USD", res.Rows[2])
	}
}

func TestSimulateHandlerCustomRowLast(t *testing.T) {
	h := newSimulateHandler(nil)

	body := `{
		"latitude": 0, "longitude": 0,
		"override_elevation": true, "manual_elevation_m": 0,
		"override_weather": true, "manual_weather_factor": 1.0,
		"target_altitude_km": 1,
		"include_custom": true,
		"custom": {
			"name": "MyCustomMethod",
			"base_cost": 30, "cost_per_gram": 0.03, "cost_per_km": 0.25,
			"efficiency": 1.2,
			"setup_time_hours": 2, "labor_rate": 20,
			"material_factor": 10, "overhead_factor": 1.2,
			"wind_sensitivity": 0.1
		}
	}`
	rec := postSimulation(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.SimulateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(res.Rows))
	}
	if last := res.Rows[5]; last.Mode != "MyCustomMethod" {
		t.Errorf("last row = %+v, want the custom method", last)
	}
}

func TestSimulateHandlerMissingDataIsUnprocessable(t *testing.T) {
	// Provider has no reading for these coordinates and no overrides given.
	h := newSimulateHandler(nil)

	rec := postSimulation(t, h, `{"latitude": 1, "longitude": 1, "target_altitude_km": 1}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestSimulateHandlerValidation(t *testing.T) {
	h := newSimulateHandler(nil)

	cases := []struct {
		name string
		body string
	}{
		{"bad latitude", `{"latitude": 95, "longitude": 0}`},
		{"negative altitude", `{"latitude": 0, "longitude": 0, "target_altitude_km": -1}`},
		{"negative mass", `{"latitude": 0, "longitude": 0, "payload_mass_g": -5}`},
		{"factor out of range", `{"latitude": 0, "longitude": 0, "override_weather": true, "manual_weather_factor": 3}`},
		{"custom without params", `{"latitude": 0, "longitude": 0, "include_custom": true}`},
		{"unknown field", `{"latitude": 0, "longitude": 0, "warp_drive": true}`},
	}

	for _, c := range cases {
		rec := postSimulation(t, h, c.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", c.name, rec.Code)
		}
	}
}

func TestSimulateHandlerModelEdits(t *testing.T) {
	elev := 0.0
	h := newSimulateHandler(map[string]domain.EnvironmentalReading{
		"0.0000,0.0000": {Elevation: &elev, Weather: &domain.WeatherSnapshot{WindSpeedKmh: 0}},
	})

	// Double the Drone efficiency and append a new mode.
	body := `{
		"latitude": 0, "longitude": 0,
		"target_altitude_km": 1,
		"models": [
			{"name": "Drone", "base_cost": 20, "cost_per_gram": 0.05, "cost_per_km": 0.15, "efficiency": 2.0},
			{"name": "Trebuchet", "base_cost": 2, "cost_per_gram": 0.001, "cost_per_km": 0.4, "efficiency": 0.9}
		]
	}`
	rec := postSimulation(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.SimulateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(res.Rows))
	}
	// Edited mode keeps its position; the new mode lands at the end.
	if res.Rows[2].Mode != "Drone" || res.Rows[2].FinalElevationM != 2000.0 {
		t.Errorf("Drone row = %+v, want 2000.0 m with doubled efficiency", res.Rows[2])
	}
	if res.Rows[5].Mode != "Trebuchet" {
		t.Errorf("last row = %+v, want appended Trebuchet", res.Rows[5])
	}
}
