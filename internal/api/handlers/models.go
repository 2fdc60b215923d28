package handlers

import (
	"duck-lift-service/internal/api/dto"
	"duck-lift-service/internal/domain"
	"net/http"
)

// ModelHandler exposes the built-in transport model presets.
type ModelHandler struct {
	Models []domain.TransportModel
}

func (h *ModelHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListModelsResponse{
		Models: make([]dto.ModelResponse, 0, len(h.Models)),
	}
	for _, m := range h.Models {
		res.Models = append(res.Models, dto.ModelResponse{
			Name:        m.Name,
			BaseCost:    m.BaseCost,
			CostPerGram: m.CostPerGram,
			CostPerKm:   m.CostPerKm,
			Efficiency:  m.Efficiency,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
