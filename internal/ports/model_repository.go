package ports

import (
	"context"
	"duck-lift-service/internal/domain"
)

// Port: a boundary for retrieving transport model presets from storage.
type ModelRepository interface {
	// Retrieve all presets in their stored (seed) order.
	ListModels(ctx context.Context) ([]domain.TransportModel, error)
}
