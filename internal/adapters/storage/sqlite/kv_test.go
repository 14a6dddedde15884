package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKV_RoundTripOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "records.db")

	s, err := Open(path)
	require.NoError(t, err)

	_, found, err := s.Get(ctx, "horse_medical_h1_weights")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "horse_medical_h1_weights", `[{"id":"a"}]`))
	require.NoError(t, s.Set(ctx, "horse_medical_h1_weights", `[{"id":"b"},{"id":"a"}]`))
	require.NoError(t, s.Close())

	// Reabrir: los datos sobreviven
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, found, err := s.Get(ctx, "horse_medical_h1_weights")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"b"},{"id":"a"}]`, v)

	require.NoError(t, s.Remove(ctx, "horse_medical_h1_weights"))
	require.NoError(t, s.Remove(ctx, "horse_medical_h1_weights"))

	_, found, err = s.Get(ctx, "horse_medical_h1_weights")
	require.NoError(t, err)
	assert.False(t, found)
}
