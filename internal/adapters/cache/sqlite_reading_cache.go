package cache

import (
	"context"
	"database/sql"
	"duck-lift-service/internal/domain"
	"errors"
	"fmt"
)

// SQLite backed cache for environmental readings keyed by rounded
// coordinates. Keys are expected to be consistent (Coordinates.CacheKey)
// by the caller.
type SqliteReadingCache struct {
	DB *sql.DB
}

func NewSqliteReadingCache(db *sql.DB) *SqliteReadingCache {
	return &SqliteReadingCache{DB: db}
}

// Fetch the cached reading for one coordinate key.
func (s *SqliteReadingCache) Get(ctx context.Context, key string) (domain.EnvironmentalReading, bool, error) {
	if s.DB == nil {
		return domain.EnvironmentalReading{}, false, errors.New("reading cache: db is nil")
	}
	if key == "" {
		return domain.EnvironmentalReading{}, false, errors.New("get reading cache: key must not be empty")
	}

	q := `
	SELECT elevation_m, temperature_c, wind_speed_kmh
	FROM reading_cache
	WHERE coord_key = ?;
	`

	var elevation, temperature, windSpeed sql.NullFloat64
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&elevation, &temperature, &windSpeed)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.EnvironmentalReading{}, false, nil
	}
	if err != nil {
		return domain.EnvironmentalReading{}, false, fmt.Errorf("get reading cache: query reading_cache table: %w", err)
	}

	return buildReading(elevation, temperature, windSpeed), true, nil
}

// Store one reading, replacing any previous entry for the key.
func (s *SqliteReadingCache) Put(ctx context.Context, key string, reading domain.EnvironmentalReading) error {
	if s.DB == nil {
		return errors.New("reading cache: db is nil")
	}
	if key == "" {
		return errors.New("insert reading cache: key must not be empty")
	}

	elevation, temperature, windSpeed := splitReading(reading)

	q := `
	INSERT OR REPLACE INTO reading_cache (
		coord_key,
		elevation_m,
		temperature_c,
		wind_speed_kmh
	)
	VALUES (?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, key, elevation, temperature, windSpeed); err != nil {
		return fmt.Errorf("insert reading cache key=%q: %w", key, err)
	}

	return nil
}

func buildReading(elevation, temperature, windSpeed sql.NullFloat64) domain.EnvironmentalReading {
	var out domain.EnvironmentalReading
	if elevation.Valid {
		v := elevation.Float64
		out.Elevation = &v
	}
	// Weather columns are written together; wind validity implies a snapshot.
	if windSpeed.Valid {
		out.Weather = &domain.WeatherSnapshot{
			TemperatureC: temperature.Float64,
			WindSpeedKmh: windSpeed.Float64,
		}
	}
	return out
}

func splitReading(reading domain.EnvironmentalReading) (elevation, temperature, windSpeed sql.NullFloat64) {
	if reading.Elevation != nil {
		elevation = sql.NullFloat64{Float64: *reading.Elevation, Valid: true}
	}
	if reading.Weather != nil {
		temperature = sql.NullFloat64{Float64: reading.Weather.TemperatureC, Valid: true}
		windSpeed = sql.NullFloat64{Float64: reading.Weather.WindSpeedKmh, Valid: true}
	}
	return elevation, temperature, windSpeed
}
