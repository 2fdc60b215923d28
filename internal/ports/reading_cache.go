package ports

import (
	"context"
	"duck-lift-service/internal/domain"
)

// Port: a boundary for memoizing environmental readings by coordinate key.
// The cache also serves as the "last successful reading" fallback when the
// external services are unavailable.
type ReadingCache interface {
	// Get returns the cached reading for key, and whether one exists.
	Get(ctx context.Context, key string) (domain.EnvironmentalReading, bool, error)
	// Put stores a reading under key, replacing any previous entry.
	Put(ctx context.Context, key string, reading domain.EnvironmentalReading) error
}
