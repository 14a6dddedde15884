package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, 15, cfg.SeedHorses)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PORT":           "9090",
		"STORAGE_DRIVER": "SQLite",
		"SQLITE_PATH":    "/tmp/h.db",
		"SEED_ON_START":  "false",
		"SEED_HORSES":    "3",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "/tmp/h.db", cfg.SQLitePath)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, 3, cfg.SeedHorses)
}

func TestLoadFrom_DriverRequirements(t *testing.T) {
	_, err := LoadFrom(map[string]string{"STORAGE_DRIVER": "postgres"})
	assert.Error(t, err)

	_, err = LoadFrom(map[string]string{"STORAGE_DRIVER": "s3"})
	assert.Error(t, err)

	_, err = LoadFrom(map[string]string{"STORAGE_DRIVER": "redis"})
	assert.Error(t, err)

	cfg, err := LoadFrom(map[string]string{"STORAGE_DRIVER": "s3", "S3_BUCKET": "vet", "S3_PREFIX": "stable-a/"})
	require.NoError(t, err)
	assert.Equal(t, "vet", cfg.S3.Bucket)
	assert.Equal(t, "stable-a/", cfg.S3.Prefix)
}

func TestLoadFrom_NotifyAndRoster(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"NOTIFY_URLS":         "logger://, ,ntfy://ntfy.sh/stable",
		"NOTIFY_MIN_SEVERITY": "Error",
		"ROSTER_CACHE_TTL":    "2m",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"logger://", "ntfy://ntfy.sh/stable"}, cfg.NotifyURLs)
	assert.Equal(t, "error", cfg.NotifyMinSeverity)
	assert.Equal(t, 2*time.Minute, cfg.RosterCacheTTL)

	_, err = LoadFrom(map[string]string{"NOTIFY_MIN_SEVERITY": "loud"})
	assert.Error(t, err)
}
