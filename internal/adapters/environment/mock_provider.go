package environment

import (
	"context"
	"duck-lift-service/internal/domain"
	"fmt"
)

// MockProvider serves canned readings keyed by Coordinates.CacheKey.
// Fetching a coordinate without an entry returns an error, which callers
// are expected to treat as provider unavailability.
type MockProvider struct {
	m map[string]domain.EnvironmentalReading
}

func NewMockProvider(readings map[string]domain.EnvironmentalReading) *MockProvider {
	if readings == nil {
		readings = map[string]domain.EnvironmentalReading{}
	}
	return &MockProvider{m: readings}
}

func (p *MockProvider) Fetch(ctx context.Context, coord domain.Coordinates) (domain.EnvironmentalReading, error) {
	r, ok := p.m[coord.CacheKey()]
	if !ok {
		return domain.EnvironmentalReading{}, fmt.Errorf("no reading for %q", coord.CacheKey())
	}
	return r, nil
}
