package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	StockFile        string
	StrictValidation bool // reject out-of-range initial stock instead of accepting it
	EnableConjured   bool // map "Conjured Mana Cake" to the conjured variant
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		StockFile:   getEnv(EnvStockFile, DefaultStockFile),
	}

	var err error
	if cfg.StrictValidation, err = getEnvAsBool(EnvStrictValidation, false); err != nil {
		return nil, err
	}
	if cfg.EnableConjured, err = getEnvAsBool(EnvEnableConjured, false); err != nil {
		return nil, err
	}

	if cfg.StockFile == "" {
		return nil, fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidConfig, EnvStockFile)
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: invalid %s value %q: %w", domain.ErrInvalidConfig, key, value, err)
	}
	return b, nil
}
