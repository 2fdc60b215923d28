package api

import (
	"duck-lift-service/internal/api/handlers"
	"duck-lift-service/internal/domain"
	"duck-lift-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(provider ports.EnvironmentProvider, models []domain.TransportModel) http.Handler {
	mux := http.NewServeMux()

	modelHandler := &handlers.ModelHandler{Models: models}
	readingHandler := &handlers.ReadingHandler{Provider: provider}
	simulateHandler := &handlers.SimulateHandler{
		Provider: provider,
		Models:   models,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/models", modelHandler.List)
	mux.HandleFunc("/readings", readingHandler.Get)
	mux.HandleFunc("/simulations", simulateHandler.Simulate)

	return loggingMiddleware(mux)
}
