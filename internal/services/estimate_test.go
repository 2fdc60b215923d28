package services

import (
	"duck-lift-service/internal/domain"
	"math"
	"reflect"
	"testing"
)

func singleModeRegistry(t *testing.T, m domain.TransportModel) *domain.Registry {
	t.Helper()
	r := domain.NewRegistry()
	if err := r.Add(m); err != nil {
		t.Fatalf("add model: %v", err)
	}
	return r
}

func TestEstimateStandardMode(t *testing.T) {
	reg := singleModeRegistry(t, domain.TransportModel{
		Name: "Drone", BaseCost: 20, CostPerGram: 0.05, CostPerKm: 0.15, Efficiency: 1.3,
	})

	rows := Estimate(SimulationInput{
		Context:          domain.ResolvedContext{BaseElevationM: 10, WeatherFactor: 1.0},
		PayloadMassG:     10,
		TargetAltitudeKm: 1,
		Registry:         reg,
	})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].FinalElevationM != 1310.0 {
		t.Errorf("FinalElevationM = %v, want 1310.0", rows[0].FinalElevationM)
	}
	if rows[0].EstimatedCostUSD != 20.65 {
		t.Errorf("EstimatedCostUSD = %v, want 20.65", rows[0].EstimatedCostUSD)
	}
}

func TestEstimateCustomMode(t *testing.T) {
	custom := &domain.CustomModel{
		TransportModel: domain.TransportModel{
			Name: "MyCustomMethod", BaseCost: 30, CostPerGram: 0.03, CostPerKm: 0.25, Efficiency: 1.2,
		},
		SetupTimeHours:  2,
		LaborRate:       20,
		MaterialFactor:  10,
		OverheadFactor:  1.2,
		WindSensitivity: 0.1,
	}

	rows := Estimate(SimulationInput{
		Context:          domain.ResolvedContext{BaseElevationM: 10, WeatherFactor: 1.0, WindSpeedKmh: 25},
		PayloadMassG:     10,
		TargetAltitudeKm: 1,
		Custom:           custom,
	})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	// 10 + 1*1000*1.2*1.0 - 25*0.1 = 1207.5
	if rows[0].FinalElevationM != 1207.5 {
		t.Errorf("FinalElevationM = %v, want 1207.5", rows[0].FinalElevationM)
	}
	// 1.2 * (30 + 0.3 + 0.25 + 40 + 10) = 96.66
	if rows[0].EstimatedCostUSD != 96.66 {
		t.Errorf("EstimatedCostUSD = %v, want 96.66", rows[0].EstimatedCostUSD)
	}
}

func TestEstimateCustomElevationFloor(t *testing.T) {
	custom := &domain.CustomModel{
		TransportModel:  domain.TransportModel{Name: "Anchor", Efficiency: 0.5},
		OverheadFactor:  1,
		WindSensitivity: 1,
	}

	rows := Estimate(SimulationInput{
		Context: domain.ResolvedContext{BaseElevationM: 1, WeatherFactor: 0.8, WindSpeedKmh: 1e6},
		Custom:  custom,
	})

	if rows[0].FinalElevationM != 0 {
		t.Errorf("FinalElevationM = %v, want floor at 0", rows[0].FinalElevationM)
	}
}

func TestEstimateOrderingAndCustomLast(t *testing.T) {
	reg := domain.NewRegistry()
	for _, name := range []string{"Zeppelin", "Balloon", "Arrow"} {
		if err := reg.Add(domain.TransportModel{Name: name, Efficiency: 1}); err != nil {
			t.Fatalf("add model: %v", err)
		}
	}

	rows := Estimate(SimulationInput{
		Context:  domain.ResolvedContext{WeatherFactor: 1},
		Registry: reg,
		// Name sorts lexically first; the row must still come last.
		Custom: &domain.CustomModel{
			TransportModel: domain.TransportModel{Name: "AAA Custom", Efficiency: 1},
			OverheadFactor: 1,
		},
	})

	want := []string{"Zeppelin", "Balloon", "Arrow", "AAA Custom"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, name := range want {
		if rows[i].ModeName != name {
			t.Errorf("rows[%d].ModeName = %q, want %q", i, rows[i].ModeName, name)
		}
	}
}

func TestEstimateDeterministic(t *testing.T) {
	in := SimulationInput{
		Context:          domain.ResolvedContext{BaseElevationM: 33.3, WeatherFactor: 0.9, WindSpeedKmh: 12},
		PayloadMassG:     42,
		TargetAltitudeKm: 7.7,
		Registry:         domain.DefaultRegistry(),
		Custom: &domain.CustomModel{
			TransportModel:  domain.TransportModel{Name: "X", BaseCost: 1, Efficiency: 1.1},
			OverheadFactor:  1.5,
			WindSensitivity: 0.3,
		},
	}

	first := Estimate(in)
	second := Estimate(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("estimate is not deterministic:\n%v\n%v", first, second)
	}
}

func TestEstimateLinearity(t *testing.T) {
	m := domain.TransportModel{Name: "Probe", BaseCost: 3, CostPerGram: 0.1, CostPerKm: 0.5, Efficiency: 1.25}
	ctx := domain.ResolvedContext{BaseElevationM: 100, WeatherFactor: 0.9}

	at := func(altKm, massG float64) domain.ResultRow {
		rows := Estimate(SimulationInput{
			Context:          ctx,
			PayloadMassG:     massG,
			TargetAltitudeKm: altKm,
			Registry:         singleModeRegistry(t, m),
		})
		return rows[0]
	}

	// Two-point slope in target altitude: d(elev)/d(km) = 1000 * eff * factor.
	r1, r2 := at(2, 10), at(5, 10)
	gotSlope := (r2.FinalElevationM - r1.FinalElevationM) / 3
	wantSlope := 1000 * m.Efficiency * ctx.WeatherFactor
	if math.Abs(gotSlope-wantSlope) > 1e-9 {
		t.Errorf("elevation slope per km = %v, want %v", gotSlope, wantSlope)
	}

	// Two-point slope in payload mass: d(cost)/d(g) = cost_per_gram.
	c1, c2 := at(2, 10), at(2, 110)
	gotCostSlope := (c2.EstimatedCostUSD - c1.EstimatedCostUSD) / 100
	if math.Abs(gotCostSlope-m.CostPerGram) > 1e-9 {
		t.Errorf("cost slope per gram = %v, want %v", gotCostSlope, m.CostPerGram)
	}
}
