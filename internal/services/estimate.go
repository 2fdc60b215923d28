package services

import (
	"duck-lift-service/internal/domain"
	"math"
)

// Input for one simulation run. The boundary validates ranges (positive
// payload mass, non-negative altitude, positive efficiencies) before the
// input reaches the engine; the formulas themselves are total.
type SimulationInput struct {
	Context          domain.ResolvedContext
	PayloadMassG     float64
	TargetAltitudeKm float64
	Registry         *domain.Registry
	// Custom participates only when non-nil. Its row is always appended
	// after the registry rows.
	Custom *domain.CustomModel
}

// Estimate applies the elevation and cost formulas to every active lift
// method and returns one row per method.
//
// The computation is pure and deterministic: rows come out in registry
// insertion order with the custom row (if any) last, and identical input
// yields identical output. Values are computed at full precision and
// rounded to cents/centimeters only here, at the output boundary.
func Estimate(in SimulationInput) []domain.ResultRow {
	ctx := in.Context

	var models []domain.TransportModel
	if in.Registry != nil {
		models = in.Registry.Models()
	}

	rows := make([]domain.ResultRow, 0, len(models)+1)
	for _, m := range models {
		elev := ctx.BaseElevationM + in.TargetAltitudeKm*1000*m.Efficiency*ctx.WeatherFactor
		cost := m.BaseCost + m.CostPerGram*in.PayloadMassG + m.CostPerKm*in.TargetAltitudeKm

		rows = append(rows, domain.ResultRow{
			ModeName:         m.Name,
			FinalElevationM:  round2(elev),
			EstimatedCostUSD: round2(cost),
		})
	}

	if in.Custom != nil {
		rows = append(rows, estimateCustom(ctx, in, *in.Custom))
	}

	return rows
}

// estimateCustom applies the extended formula for the user-defined method:
// a wind penalty scales with raw wind speed, and the cost folds setup
// labor and material under an overhead multiplier.
func estimateCustom(ctx domain.ResolvedContext, in SimulationInput, cm domain.CustomModel) domain.ResultRow {
	windPenalty := ctx.WindSpeedKmh * cm.WindSensitivity
	elev := ctx.BaseElevationM + in.TargetAltitudeKm*1000*cm.Efficiency*ctx.WeatherFactor - windPenalty
	// Altitude is physically non-negative; a hard floor, not an error.
	elev = math.Max(elev, 0)

	partial := cm.BaseCost +
		cm.CostPerGram*in.PayloadMassG +
		cm.CostPerKm*in.TargetAltitudeKm +
		cm.SetupTimeHours*cm.LaborRate +
		cm.MaterialFactor
	cost := cm.OverheadFactor * partial

	return domain.ResultRow{
		ModeName:         cm.Name,
		FinalElevationM:  round2(elev),
		EstimatedCostUSD: round2(cost),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
