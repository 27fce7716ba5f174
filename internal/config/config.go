// Package config provides configuration for chatvault.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvProduction suppresses diagnostic detail in error responses.
const EnvProduction = "production"

// Config holds the chatvault configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Runtime mode: "development" or "production"
	Env string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		DatabaseURL: getEnv("DATABASE_URL", "file:chatvault.db?cache=shared&mode=rwc"),
		Env:         getEnv("APP_ENV", "development"),
	}
	return cfg
}

// Debug reports whether error responses may carry diagnostic detail.
func (c *Config) Debug() bool {
	return c.Env != EnvProduction
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
