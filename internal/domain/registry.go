package domain

import "fmt"

// Registry holds the active transport models keyed by name.
// Insertion order is preserved so simulation output and chart legends
// stay stable across runs.
type Registry struct {
	order  []string
	models map[string]TransportModel
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]TransportModel)}
}

// Add appends a model to the registry. Names must be unique.
func (r *Registry) Add(m TransportModel) error {
	if m.Name == "" {
		return fmt.Errorf("registry add: model name must be non-empty")
	}
	if _, ok := r.models[m.Name]; ok {
		return fmt.Errorf("registry add: duplicate model name %q", m.Name)
	}
	r.order = append(r.order, m.Name)
	r.models[m.Name] = m
	return nil
}

// Upsert replaces an existing model's parameters, or appends it when new.
// Replacing keeps the original insertion position.
func (r *Registry) Upsert(m TransportModel) error {
	if m.Name == "" {
		return fmt.Errorf("registry upsert: model name must be non-empty")
	}
	if _, ok := r.models[m.Name]; !ok {
		r.order = append(r.order, m.Name)
	}
	r.models[m.Name] = m
	return nil
}

// Get returns the model registered under name.
func (r *Registry) Get(name string) (TransportModel, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Models returns all registered models in insertion order.
func (r *Registry) Models() []TransportModel {
	out := make([]TransportModel, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.models[name])
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }

// DefaultRegistry seeds the five built-in lift methods.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, m := range []TransportModel{
		{Name: "Helium Balloon", BaseCost: 10, CostPerGram: 0.02, CostPerKm: 0.2, Efficiency: 1.1},
		{Name: "Weather Balloon", BaseCost: 15, CostPerGram: 0.015, CostPerKm: 0.25, Efficiency: 1.2},
		{Name: "Drone", BaseCost: 20, CostPerGram: 0.05, CostPerKm: 0.15, Efficiency: 1.3},
		{Name: "Hot Air Balloon", BaseCost: 50, CostPerGram: 0.01, CostPerKm: 0.1, Efficiency: 1.5},
		{Name: "Catapult", BaseCost: 5, CostPerGram: 0.005, CostPerKm: 0.3, Efficiency: 1.05},
	} {
		// Names are distinct literals; Add cannot fail here.
		_ = r.Add(m)
	}
	return r
}
