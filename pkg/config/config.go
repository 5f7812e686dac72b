// Package config loads and validates service configuration from the
// environment. A .env file, when present, is loaded by main before
// this package reads anything.
package config

import (
	"fmt"
	"os"
)

// Config is the root configuration for the inbox service.
type Config struct {
	// HTTPPort is the listen port for the API server.
	HTTPPort string

	// FrontendURL is the allowed CORS origin for the agent dashboard.
	FrontendURL string

	// AuthSecret signs and verifies API tokens.
	AuthSecret string

	// AuthURL is the expected token issuer, the base URL of the external
	// auth service.
	AuthURL string

	// StoragePath is the local root for downloaded media files.
	StoragePath string

	Providers ProvidersConfig
	Queue     QueueConfig
	Coord     CoordConfig
	Gateway   GatewayConfig
}

// Load reads configuration from the environment and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:    getEnv("PORT", getEnv("HTTP_PORT", "8080")),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		AuthSecret:  os.Getenv("AUTH_SECRET"),
		AuthURL:     getEnv("AUTH_URL", "http://localhost:8080"),
		StoragePath: getEnv("STORAGE_PATH", "./storage"),
		Providers:   loadProvidersFromEnv(),
		Queue:       loadQueueFromEnv(),
		Coord:       loadCoordFromEnv(),
		Gateway:     DefaultGatewayConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and consistent.
func (c *Config) Validate() error {
	if c.AuthSecret == "" {
		return fmt.Errorf("AUTH_SECRET is required")
	}
	if err := c.Providers.Validate(); err != nil {
		return err
	}
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	if err := c.Coord.Validate(); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
