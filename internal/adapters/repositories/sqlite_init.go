package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createModelsQuery := `
	CREATE TABLE IF NOT EXISTS transport_models (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		base_cost REAL NOT NULL,
		cost_per_gram REAL NOT NULL,
		cost_per_km REAL NOT NULL,
		efficiency REAL NOT NULL
	);
	`

	createReadingCacheQuery := `
	CREATE TABLE IF NOT EXISTS reading_cache (
		coord_key TEXT PRIMARY KEY,
		elevation_m REAL,
		temperature_c REAL,
		wind_speed_kmh REAL
	);
	`

	statements := []string{
		createModelsQuery,
		createReadingCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ModelSeed struct {
	Name        string  `json:"name"`
	BaseCost    float64 `json:"base_cost"`
	CostPerGram float64 `json:"cost_per_gram"`
	CostPerKm   float64 `json:"cost_per_km"`
	Efficiency  float64 `json:"efficiency"`
}

// Populate the database with transport model presets from a JSON file.
// Seed order becomes registry insertion order, so the file's ordering is
// significant for output stability.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed models: read %q: %w", jsonPath, err)
	}

	var data []ModelSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed models: parse json: %w", err)
	}

	rows := make([]ModelSeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed models: item at index %d: name cannot be empty", i+1)
		}
		if item.BaseCost < 0 || item.CostPerGram < 0 || item.CostPerKm < 0 {
			return fmt.Errorf("seed models: %q: costs must be non-negative", name)
		}
		if item.Efficiency <= 0 {
			return fmt.Errorf("seed models: %q: efficiency must be positive", name)
		}
		item.Name = name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed models: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO transport_models (
		position,
		name,
		base_cost,
		cost_per_gram,
		cost_per_km,
		efficiency
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed models: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range rows {
		if _, err := stmt.Exec(i+1, m.Name, m.BaseCost, m.CostPerGram, m.CostPerKm, m.Efficiency); err != nil {
			return fmt.Errorf("seed models: insert %q: %w", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed models: commit tx: %w", err)
	}

	return nil
}
