package cache

import (
	"context"
	"database/sql"
	"duck-lift-service/internal/domain"
	"duck-lift-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQLReadingCache is a Postgres-backed cache for environmental readings.
type SQLReadingCache struct {
	DB *sql.DB
}

func NewSQLReadingCache(db *sql.DB) *SQLReadingCache {
	return &SQLReadingCache{DB: db}
}

// Fetch the cached reading for one coordinate key.
func (s *SQLReadingCache) Get(ctx context.Context, key string) (_ domain.EnvironmentalReading, _ bool, err error) {
	defer obs.Time(ctx, "reading.cache.Get")(&err)

	if s.DB == nil {
		return domain.EnvironmentalReading{}, false, errors.New("reading cache: db is nil")
	}
	if key == "" {
		return domain.EnvironmentalReading{}, false, errors.New("get reading cache: key must not be empty")
	}

	q := `
	SELECT elevation_m, temperature_c, wind_speed_kmh
	FROM reading_cache
	WHERE coord_key = $1;
	`

	var elevation, temperature, windSpeed sql.NullFloat64
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&elevation, &temperature, &windSpeed)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.EnvironmentalReading{}, false, nil
	}
	if err != nil {
		return domain.EnvironmentalReading{}, false, fmt.Errorf("get reading cache: query reading_cache table: %w", err)
	}

	return buildReading(elevation, temperature, windSpeed), true, nil
}

// Store one reading, replacing any previous entry for the key.
func (s *SQLReadingCache) Put(ctx context.Context, key string, reading domain.EnvironmentalReading) error {
	if s.DB == nil {
		return errors.New("reading cache: db is nil")
	}
	if key == "" {
		return errors.New("insert reading cache: key must not be empty")
	}

	elevation, temperature, windSpeed := splitReading(reading)

	q := `
	INSERT INTO reading_cache (coord_key, elevation_m, temperature_c, wind_speed_kmh)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (coord_key) DO UPDATE
	SET elevation_m = EXCLUDED.elevation_m,
		temperature_c = EXCLUDED.temperature_c,
		wind_speed_kmh = EXCLUDED.wind_speed_kmh;
	`
	if _, err := s.DB.ExecContext(ctx, q, key, elevation, temperature, windSpeed); err != nil {
		return fmt.Errorf("insert reading cache key=%q: %w", key, err)
	}

	return nil
}
