package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"geofence/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StorageDriverPostgres, cfg.Storage.Driver)
	require.NotNil(t, cfg.Proximity)
	assert.Equal(t, 5000.0, cfg.Proximity.SearchRadius)
	assert.Equal(t, 10000.0, cfg.Proximity.MaxRegionRadius)
	assert.Equal(t, time.Hour, cfg.Proximity.Cooldown)
	assert.False(t, cfg.Proximity.RejectStaleLocations)
	require.NotNil(t, cfg.Push)
	assert.Equal(t, constants.DefaultDispatchConcurrency, cfg.Push.MaxConcurrency)
	assert.Equal(t, 10*time.Second, cfg.Push.DeliveryTimeout)
	assert.Nil(t, cfg.Redis)
}

func TestApplyDefaults_RegionRadiusCannotExceedHardLimit(t *testing.T) {
	cfg := &Config{Proximity: &ProximityConfig{MaxRegionRadius: 25000, SearchRadius: 2500}}

	applyDefaults(cfg)

	assert.Equal(t, constants.MaxRegionRadiusMeters, cfg.Proximity.MaxRegionRadius)
	assert.Equal(t, 2500.0, cfg.Proximity.SearchRadius)
}

func TestApplyDefaults_RedisLockTimings(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{URL: "redis://localhost:6379/0"}, Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	assert.Equal(t, defaultLockTTL, cfg.Redis.LockTTL)
	assert.Equal(t, defaultLockRetryInterval, cfg.Redis.LockRetryInterval)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
storage:
  driver: memory
proximity:
  searchRadius: 5000
  cooldown: 1h
  rejectStaleLocations: false
push:
  deliveryTimeout: 10s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))

	t.Setenv("PROXIMITY_REJECTSTALELOCATIONS", "true")
	t.Setenv("PUSH_DELIVERYTIMEOUT", "5s")

	cfg, err := LoadWithEnv[Config]("test", relativeTo(t, dir))
	require.NoError(t, err)

	assert.Equal(t, constants.StorageDriverMemory, cfg.Storage.Driver)
	require.NotNil(t, cfg.Proximity)
	assert.True(t, cfg.Proximity.RejectStaleLocations)
	assert.Equal(t, time.Hour, cfg.Proximity.Cooldown)
	require.NotNil(t, cfg.Push)
	assert.Equal(t, 5*time.Second, cfg.Push.DeliveryTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", relativeTo(t, t.TempDir()))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func relativeTo(t *testing.T, dir string) string {
	t.Helper()

	pwd, err := os.Getwd()
	require.NoError(t, err)

	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	return rel
}
