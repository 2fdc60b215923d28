package ports

import (
	"context"
	"duck-lift-service/internal/domain"
)

// Contract for retrieving environmental data at a coordinate.
type EnvironmentProvider interface {
	// Fetch returns the elevation and current weather at the coordinate.
	// Partial availability is normal: a reading with nil fields means the
	// corresponding upstream service could not answer. An error is reserved
	// for invalid input, not upstream unavailability.
	Fetch(ctx context.Context, coord domain.Coordinates) (domain.EnvironmentalReading, error)
}
