package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Env string

	// Remote academic-services API
	APIBaseURL string

	// Cache
	CacheTTL time.Duration

	// Derived views
	DeadlineLimit int

	// Mock API server (development fixture)
	MockAPIPort   string
	MockAPISecret string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Env:           getEnvOrDefault("ENV", "development"),
		APIBaseURL:    getEnvOrDefault("API_BASE_URL", "http://localhost:8000"),
		CacheTTL:      getEnvAsDurationOrDefault("CACHE_TTL", 30*time.Second),
		DeadlineLimit: getEnvAsIntOrDefault("DEADLINE_LIMIT", 5),
		MockAPIPort:   getEnvOrDefault("MOCK_API_PORT", "8000"),
		MockAPISecret: getEnvOrDefault("MOCK_API_SECRET", "dev-only-secret"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
