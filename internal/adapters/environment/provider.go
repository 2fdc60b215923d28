package environment

import (
	"context"
	"duck-lift-service/internal/domain"
	"duck-lift-service/internal/platform/obs"
	"duck-lift-service/internal/ports"
	"fmt"
	"log"
)

// Provider implements EnvironmentProvider over Open-Elevation and Open-Meteo.
//
// It coordinates:
//   - Read-through caching keyed on rounded coordinates
//   - Independent elevation and weather fetches with retry/backoff
//   - Fallback to the last successful reading when a service is down
//
// A field that cannot be fetched at all is simply absent from the reading;
// unavailability is a normal state, never a Fetch error.
type Provider struct {
	elevation *ElevationClient
	weather   *WeatherClient
	cache     ports.ReadingCache
}

func NewProvider(elevation *ElevationClient, weather *WeatherClient, cache ports.ReadingCache) *Provider {
	return &Provider{
		elevation: elevation,
		weather:   weather,
		cache:     cache,
	}
}

func (p *Provider) Fetch(ctx context.Context, coord domain.Coordinates) (_ domain.EnvironmentalReading, err error) {
	defer obs.Time(ctx, "environment.Fetch")(&err)

	if !coord.Valid() {
		return domain.EnvironmentalReading{}, fmt.Errorf("environment fetch: coordinates out of range (lat=%v lon=%v)", coord.Lat, coord.Lon)
	}

	key := coord.CacheKey()

	var cached domain.EnvironmentalReading
	if p.cache != nil {
		var ok bool
		var cacheErr error
		cached, ok, cacheErr = p.cache.Get(ctx, key)
		if cacheErr != nil {
			log.Printf("reading cache get failed key=%s err=%v", key, cacheErr)
		} else if ok && cached.Elevation != nil && cached.Weather != nil {
			// Complete cached reading inside the caching window.
			return cached, nil
		}
	}

	reading := domain.EnvironmentalReading{}

	if p.elevation != nil {
		elev, err := p.elevation.Lookup(ctx, coord)
		if err != nil {
			log.Printf("elevation fetch failed key=%s err=%v", key, err)
		} else {
			reading.Elevation = &elev
		}
	}

	if p.weather != nil {
		snap, err := p.weather.Current(ctx, coord)
		if err != nil {
			log.Printf("weather fetch failed key=%s err=%v", key, err)
		} else {
			reading.Weather = &snap
		}
	}

	// Last successful reading backfills whatever this round missed.
	if reading.Elevation == nil {
		reading.Elevation = cached.Elevation
	}
	if reading.Weather == nil {
		reading.Weather = cached.Weather
	}

	if p.cache != nil && !reading.Empty() {
		if err := p.cache.Put(ctx, key, reading); err != nil {
			log.Printf("reading cache write failed key=%s err=%v", key, err)
		}
	}

	return reading, nil
}
