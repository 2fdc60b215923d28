package cache

import (
	"context"
	"duck-lift-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type cachedReading struct {
	ElevationM   *float64 `json:"elevation_m,omitempty"`
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	WindSpeedKmh *float64 `json:"wind_speed_kmh,omitempty"`
}

// RedisReadingCache stores readings as JSON values with a TTL, which gives
// the fetch idempotency window an explicit expiry. A TTL of zero keeps
// entries until overwritten.
type RedisReadingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisReadingCache(client *redis.Client, ttl time.Duration) *RedisReadingCache {
	return &RedisReadingCache{Client: client, TTL: ttl}
}

func (r *RedisReadingCache) redisKey(key string) string {
	return "reading:" + key
}

// Fetch the cached reading for one coordinate key.
func (r *RedisReadingCache) Get(ctx context.Context, key string) (domain.EnvironmentalReading, bool, error) {
	if r.Client == nil {
		return domain.EnvironmentalReading{}, false, errors.New("reading cache: redis client is nil")
	}
	if key == "" {
		return domain.EnvironmentalReading{}, false, errors.New("get reading cache: key must not be empty")
	}

	raw, err := r.Client.Get(ctx, r.redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.EnvironmentalReading{}, false, nil
	}
	if err != nil {
		return domain.EnvironmentalReading{}, false, fmt.Errorf("get reading cache: redis get: %w", err)
	}

	var c cachedReading
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return domain.EnvironmentalReading{}, false, fmt.Errorf("get reading cache: decode value: %w", err)
	}

	var out domain.EnvironmentalReading
	out.Elevation = c.ElevationM
	if c.WindSpeedKmh != nil {
		snap := domain.WeatherSnapshot{WindSpeedKmh: *c.WindSpeedKmh}
		if c.TemperatureC != nil {
			snap.TemperatureC = *c.TemperatureC
		}
		out.Weather = &snap
	}

	return out, true, nil
}

// Store one reading, replacing any previous entry for the key.
func (r *RedisReadingCache) Put(ctx context.Context, key string, reading domain.EnvironmentalReading) error {
	if r.Client == nil {
		return errors.New("reading cache: redis client is nil")
	}
	if key == "" {
		return errors.New("insert reading cache: key must not be empty")
	}

	c := cachedReading{ElevationM: reading.Elevation}
	if reading.Weather != nil {
		temp := reading.Weather.TemperatureC
		wind := reading.Weather.WindSpeedKmh
		c.TemperatureC = &temp
		c.WindSpeedKmh = &wind
	}

	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("insert reading cache key=%q: encode value: %w", key, err)
	}

	if err := r.Client.Set(ctx, r.redisKey(key), payload, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert reading cache key=%q: redis set: %w", key, err)
	}

	return nil
}
