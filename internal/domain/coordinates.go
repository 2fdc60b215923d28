package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether the pair lies inside the WGS84 ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// CacheKey returns a stable key for reading caches. Coordinates are
// rounded to 4 decimal places (~11 m) so nearby requests share an entry.
func (c Coordinates) CacheKey() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}
