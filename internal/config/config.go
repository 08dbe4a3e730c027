// Package config reads application settings from environment variables.
package config

import "os"

// Config holds all configuration for the application,
// typically loaded from environment variables.
type Config struct {
	DataDir  string
	LogLevel string
}

// Load reads settings from environment variables (which may have been
// populated from a .env file in main.go). Both settings have defaults,
// so Load never fails.
func Load() *Config {
	return &Config{
		DataDir:  envOrDefault("ETA_DATA_DIR", "data"),
		LogLevel: envOrDefault("ETA_LOG_LEVEL", "warn"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
