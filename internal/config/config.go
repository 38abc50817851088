package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Cheertaboi/refill-pricing-service/pkg/db"
)

type AppConfig struct {
	// Server
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// Pricing
	QuoteCacheTTL time.Duration
	BatchWorkers  int

	// Redis, empty address keeps the cache in process
	RedisAddr string
	RedisPass string

	// Postgres, empty host runs on the in-memory catalog
	Postgres db.PostgresConfig
}

// Load reads an optional .env file, then environment variables.
// A missing .env file is not an error.
func Load(envFiles ...string) AppConfig {
	_ = godotenv.Load(envFiles...)

	pg, _ := db.LoadPostgresConfig()

	return AppConfig{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		QuoteCacheTTL:   getEnvDuration("QUOTE_CACHE_TTL", 5*time.Minute),
		BatchWorkers:    getEnvInt("BATCH_WORKERS", 4),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPass:       getEnv("REDIS_PASS", ""),
		Postgres:        pg,
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
