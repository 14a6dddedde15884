package app

import (
	"context"
	"path/filepath"
	"testing"

	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MemoryDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	a, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	list, err := a.Horses.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

func TestNew_SQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")
	cfg, err := config.LoadFrom(map[string]string{
		"STORAGE_DRIVER": "sqlite",
		"SQLITE_PATH":    path,
		"SEED_HORSES":    "2",
	})
	require.NoError(t, err)
	ctx := context.Background()

	a, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	rep, err := a.Seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Horses)
	require.NoError(t, a.Close())

	b, err := New(ctx, cfg, nil)
	require.NoError(t, err)
	defer b.Close()

	again, err := b.Seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Total())
	assert.Equal(t, 2, again.Skipped[records.DomainWeights])
}

func TestNewRoster(t *testing.T) {
	r, err := NewRoster(config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, r)

	r, err = NewRoster(config.Config{RosterURL: "http://roster.local"})
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestOpenSubstrate_UnknownDriver(t *testing.T) {
	_, _, err := OpenSubstrate(context.Background(), config.Config{StorageDriver: "redis"})
	assert.Error(t, err)
}
