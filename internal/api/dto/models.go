package dto

type ModelResponse struct {
	Name        string  `json:"name"`
	BaseCost    float64 `json:"base_cost"`
	CostPerGram float64 `json:"cost_per_gram"`
	CostPerKm   float64 `json:"cost_per_km"`
	Efficiency  float64 `json:"efficiency"`
}

type ListModelsResponse struct {
	Models []ModelResponse `json:"models"`
}
