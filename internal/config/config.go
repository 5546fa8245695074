// Package config reads service settings from the environment, with a
// best-effort .env file on top for local runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings, populated from environment variables. The
// source URL and input format do not live here; they are the command-line
// surface.
type Config struct {
	// Geoportal provider endpoints.
	PointURL        string
	AreaURL         string
	ProviderTimeout time.Duration

	// Artifact paths.
	CachePath   string
	GeoJSONPath string
	StatePath   string

	LogLevel  string
	LogFormat string

	// MetricsAddr enables the /metrics endpoint while a run is in flight.
	// Empty (the default) disables it.
	MetricsAddr string
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file in the working directory is merged in first when
// present.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	timeout, err := parseTimeout("PROVIDER_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		PointURL:        envOrDefault("GEOPORTAL_POINT_URL", "https://geoportal.freifunk-westpfalz.de/areas/point"),
		AreaURL:         envOrDefault("GEOPORTAL_AREA_URL", "https://geoportal.freifunk-westpfalz.de/areas/area"),
		ProviderTimeout: timeout,
		CachePath:       envOrDefault("CACHE_PATH", "cache.json"),
		GeoJSONPath:     envOrDefault("GEOJSON_PATH", "nodes.geojson"),
		StatePath:       envOrDefault("STATE_PATH", "state.json"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
	}

	if cfg.PointURL == "" {
		return nil, errors.New("GEOPORTAL_POINT_URL is required")
	}
	if cfg.AreaURL == "" {
		return nil, errors.New("GEOPORTAL_AREA_URL is required")
	}
	if cfg.GeoJSONPath == "" {
		return nil, errors.New("GEOJSON_PATH is required")
	}
	if cfg.StatePath == "" {
		return nil, errors.New("STATE_PATH is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseTimeout(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}
