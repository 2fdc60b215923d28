package main

import (
	"context"
	"database/sql"
	"duck-lift-service/internal/adapters/cache"
	"duck-lift-service/internal/adapters/environment"
	"duck-lift-service/internal/adapters/repositories"
	"duck-lift-service/internal/api"
	"duck-lift-service/internal/config"
	"duck-lift-service/internal/domain"
	"duck-lift-service/internal/platform/db"
	"duck-lift-service/internal/ports"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Open-Elevation, Open-Meteo) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/transport_models.json")
	port := config.Get("PORT", "8080")

	sqliteDB, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema and seed the preset models on startup for local runs.
	if err := initAndSeed(sqliteDB, seedPath); err != nil {
		log.Fatal(err)
	}

	models, err := loadModels(repositories.NewSqliteModelRepository(sqliteDB))
	if err != nil {
		log.Fatal(err)
	}

	readingCache, err := buildReadingCache(sqliteDB)
	if err != nil {
		log.Fatal(err)
	}

	// External fetches go through a persistent read-through cache so repeat
	// runs for the same coordinates avoid upstream calls, and the last
	// successful reading survives upstream outages.
	provider := environment.NewProvider(
		environment.NewElevationClient(config.Get("ELEVATION_BASE_URL", "")),
		environment.NewWeatherClient(config.Get("WEATHER_BASE_URL", "")),
		readingCache,
	)

	router := api.NewRouter(provider, models)

	// Timeouts are tuned for cold-cache simulation runs (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// loadModels reads the presets from storage, falling back to the compiled-in
// defaults when the table is empty.
func loadModels(repo ports.ModelRepository) ([]domain.TransportModel, error) {
	models, err := repo.ListModels(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load models: %w", err)
	}
	if len(models) == 0 {
		log.Println("no stored presets, using built-in defaults")
		models = domain.DefaultRegistry().Models()
	}
	return models, nil
}

// buildReadingCache selects the reading cache backend via CACHE_BACKEND.
// sqlite shares the server database; postgres and redis point at external
// stores for deployments with more than one instance.
func buildReadingCache(sqliteDB *sql.DB) (ports.ReadingCache, error) {
	backend := config.Get("CACHE_BACKEND", "sqlite")

	switch backend {
	case "sqlite":
		return cache.NewSqliteReadingCache(sqliteDB), nil

	case "postgres":
		pg, err := db.Open(config.Get("DATABASE_URL", ""))
		if err != nil {
			return nil, fmt.Errorf("build reading cache: %w", err)
		}
		return cache.NewSQLReadingCache(pg), nil

	case "redis":
		ttl, err := time.ParseDuration(config.Get("READING_TTL", "15m"))
		if err != nil {
			return nil, fmt.Errorf("build reading cache: parse READING_TTL: %w", err)
		}
		client := redis.NewClient(&redis.Options{
			Addr: config.Get("REDIS_ADDR", "localhost:6379"),
		})
		return cache.NewRedisReadingCache(client, ttl), nil

	default:
		return nil, fmt.Errorf("build reading cache: unknown CACHE_BACKEND %q", backend)
	}
}
