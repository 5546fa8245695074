package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://geoportal.freifunk-westpfalz.de/areas/point", cfg.PointURL)
	assert.Equal(t, "https://geoportal.freifunk-westpfalz.de/areas/area", cfg.AreaURL)
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, "cache.json", cfg.CachePath)
	assert.Equal(t, "nodes.geojson", cfg.GeoJSONPath)
	assert.Equal(t, "state.json", cfg.StatePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("GEOPORTAL_POINT_URL", "http://localhost:9000/point")
	t.Setenv("GEOPORTAL_AREA_URL", "http://localhost:9000/area")
	t.Setenv("PROVIDER_TIMEOUT", "5s")
	t.Setenv("CACHE_PATH", "/var/cache/map/cache.json")
	t.Setenv("GEOJSON_PATH", "/srv/www/nodes.geojson")
	t.Setenv("STATE_PATH", "/srv/www/state.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ADDR", ":9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/point", cfg.PointURL)
	assert.Equal(t, "http://localhost:9000/area", cfg.AreaURL)
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, "/var/cache/map/cache.json", cfg.CachePath)
	assert.Equal(t, "/srv/www/nodes.geojson", cfg.GeoJSONPath)
	assert.Equal(t, "/srv/www/state.json", cfg.StatePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
}

func TestLoad_InvalidProviderTimeout(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROVIDER_TIMEOUT")
}

func TestLoad_NegativeProviderTimeout(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROVIDER_TIMEOUT")
}
