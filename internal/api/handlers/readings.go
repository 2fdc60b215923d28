package handlers

import (
	"duck-lift-service/internal/api/dto"
	"duck-lift-service/internal/domain"
	"duck-lift-service/internal/ports"
	"log"
	"net/http"
	"strconv"
)

// ReadingHandler exposes the environmental data fetch as its own endpoint
// so callers can preview elevation and weather before running a simulation.
type ReadingHandler struct {
	Provider ports.EnvironmentProvider
}

func (h *ReadingHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lat must be a number")
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lon must be a number")
		return
	}

	coord := domain.Coordinates{Lat: lat, Lon: lon}
	if !coord.Valid() {
		writeError(w, r, http.StatusBadRequest, "coordinates out of range")
		return
	}

	reading, err := h.Provider.Fetch(r.Context(), coord)
	if err != nil {
		log.Printf("fetch reading failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ReadingResponse{ElevationM: reading.Elevation}
	if reading.Weather != nil {
		res.Weather = &dto.WeatherResponse{
			TemperatureC: reading.Weather.TemperatureC,
			WindSpeedKmh: reading.Weather.WindSpeedKmh,
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
