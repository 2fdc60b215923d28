package main

import (
	"database/sql"
	"duck-lift-service/internal/platform/db"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool prepares the Postgres reading cache schema for deployments that
// run with CACHE_BACKEND=postgres.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	if err := initSchema(pg); err != nil {
		log.Fatal(err)
	}
	log.Println("Reading cache schema ready.")
}

func initSchema(pg *sql.DB) error {
	log.Println("Initializing reading cache schema...")

	q := `
	CREATE TABLE IF NOT EXISTS reading_cache (
		coord_key TEXT PRIMARY KEY,
		elevation_m DOUBLE PRECISION,
		temperature_c DOUBLE PRECISION,
		wind_speed_kmh DOUBLE PRECISION
	);
	`
	if _, err := pg.Exec(q); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}

	return nil
}
