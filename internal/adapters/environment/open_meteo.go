package environment

import (
	"context"
	"duck-lift-service/internal/domain"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultWeatherBaseURL = "https://api.open-meteo.com"

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
	} `json:"current_weather"`
}

// WeatherClient fetches current conditions from the Open-Meteo API.
// Open-Meteo reports wind speed in km/h by default.
type WeatherClient struct {
	session *http.Client
	baseURL string
}

func NewWeatherClient(baseURL string) *WeatherClient {
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}
	return &WeatherClient{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

// Current returns the current weather snapshot at the coordinate.
func (c *WeatherClient) Current(ctx context.Context, coord domain.Coordinates) (domain.WeatherSnapshot, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/forecast?latitude=%v&longitude=%v&current_weather=true",
		c.baseURL, coord.Lat, coord.Lon,
	)

	resp, err := doWithRetry(ctx, c.session, func() (*http.Request, error) {
		return newRequest(ctx, endpoint)
	})
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather fetch: %w", err)
	}
	defer resp.Body.Close()

	var decoded forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather fetch: decode response: %w", err)
	}

	if decoded.CurrentWeather == nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather fetch: no current_weather for %s", coord.CacheKey())
	}

	return domain.WeatherSnapshot{
		TemperatureC: decoded.CurrentWeather.Temperature,
		WindSpeedKmh: decoded.CurrentWeather.WindSpeed,
	}, nil
}
