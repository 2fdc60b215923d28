package environment

import (
	"context"
	"duck-lift-service/internal/domain"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultElevationBaseURL = "https://api.open-elevation.com"

type lookupResponse struct {
	Results []struct {
		Elevation float64 `json:"elevation"`
	} `json:"results"`
}

// ElevationClient fetches ground elevation from the Open-Elevation API.
type ElevationClient struct {
	session *http.Client
	baseURL string
}

func NewElevationClient(baseURL string) *ElevationClient {
	if baseURL == "" {
		baseURL = defaultElevationBaseURL
	}
	return &ElevationClient{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

// Lookup returns the elevation (meters above sea level) at the coordinate.
func (c *ElevationClient) Lookup(ctx context.Context, coord domain.Coordinates) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v1/lookup?locations=%v,%v", c.baseURL, coord.Lat, coord.Lon)

	resp, err := doWithRetry(ctx, c.session, func() (*http.Request, error) {
		return newRequest(ctx, endpoint)
	})
	if err != nil {
		return 0, fmt.Errorf("elevation lookup: %w", err)
	}
	defer resp.Body.Close()

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("elevation lookup: decode response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return 0, fmt.Errorf("elevation lookup: no results for %s", coord.CacheKey())
	}

	return decoded.Results[0].Elevation, nil
}
