package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// SSOT: every environment variable is read here and nowhere else
type Config struct {
	Env string // development, staging, production

	// MLB Stats API
	StatsAPI StatsAPIConfig

	// Ranking defaults
	Season          int     // 0 = current year
	SmoothingFactor float64 // 0..1, damping for opponent adjustment
	OutputDir       string  // where CSV results are written

	// Database (optional; empty URL disables persistence)
	Database DatabaseConfig

	// HTTP API server
	ServerAddr string

	// Logging
	LogLevel  string
	LogFormat string
}

// StatsAPIConfig holds MLB Stats API configuration
type StatsAPIConfig struct {
	BaseURL        string
	RequestsPerSec float64 // polite rate limit for sequential fetching
	Timeout        time.Duration
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Load reads configuration from environment variables
// SSOT: this is the only function that calls os.Getenv()
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		StatsAPI: StatsAPIConfig{
			BaseURL:        getEnv("MLB_API_BASE_URL", "https://statsapi.mlb.com/api/v1"),
			RequestsPerSec: getEnvAsFloat("MLB_API_RPS", 4.0),
			Timeout:        getEnvAsDuration("MLB_API_TIMEOUT", "30s"),
		},

		Season:          getEnvAsInt("SEASON", 0),
		SmoothingFactor: getEnvAsFloat("SMOOTHING_FACTOR", 0.3),
		OutputDir:       getEnv("OUTPUT_DIR", "results"),

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.StatsAPI.BaseURL == "" {
		return fmt.Errorf("MLB_API_BASE_URL must not be empty")
	}

	if c.SmoothingFactor < 0 || c.SmoothingFactor > 1 {
		return fmt.Errorf("SMOOTHING_FACTOR must be in [0,1], got %v", c.SmoothingFactor)
	}

	return nil
}

// EffectiveSeason resolves the configured season, defaulting to the current year
func (c *Config) EffectiveSeason() int {
	if c.Season > 0 {
		return c.Season
	}
	return time.Now().Year()
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
