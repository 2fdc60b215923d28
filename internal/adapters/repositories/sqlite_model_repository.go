package repositories

import (
	"context"
	"database/sql"
	"duck-lift-service/internal/domain"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the ModelRepository port.
type SqliteModelRepository struct{ DB *sql.DB }

func NewSqliteModelRepository(db *sql.DB) *SqliteModelRepository {
	return &SqliteModelRepository{DB: db}
}

// Return all transport model presets in seed order.
func (s *SqliteModelRepository) ListModels(ctx context.Context) ([]domain.TransportModel, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite model repository: DB is nil")
	}

	query := `
	SELECT
		name,
		base_cost,
		cost_per_gram,
		cost_per_km,
		efficiency
	FROM transport_models
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list models: query transport_models table: %w", err)
	}
	defer rows.Close()

	models := make([]domain.TransportModel, 0, 8)
	for rows.Next() {
		var m domain.TransportModel
		if err := rows.Scan(&m.Name, &m.BaseCost, &m.CostPerGram, &m.CostPerKm, &m.Efficiency); err != nil {
			return nil, fmt.Errorf("list models: scan row: %w", err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list models: row iteration: %w", err)
	}

	return models, nil
}
