package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"horse-medical-records/internal/adapters/storage/memory"
	"horse-medical-records/internal/app"
	"horse-medical-records/internal/platform/config"
	"horse-medical-records/internal/ports/ids"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sharedFactory devuelve siempre el mismo App en memoria, para que los
// comandos de un test vean lo que escribieron los anteriores.
func sharedFactory() Factory {
	a := app.Assemble(app.Parts{
		Config: config.Config{SeedHorses: 15},
		KV:     memory.NewKV(),
		Roster: memory.NewDemoRoster(),
		IDs:    &ids.Counter{},
		Now:    func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) },
	})
	return func(context.Context) (*app.App, error) { return a, nil }
}

func run(t *testing.T, f Factory, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRoot(f)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSeedListReset(t *testing.T) {
	f := sharedFactory()

	out, err := run(t, f, "seed", "--horses", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "horses: 2")
	assert.Contains(t, out, "skipped=0")

	out, err = run(t, f, "seed", "--horses", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "weights     seeded=0 skipped=2")

	out, err = run(t, f, "list", "h01", "weights")
	require.NoError(t, err)
	var ws []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &ws))
	assert.Len(t, ws, 4)

	out, err = run(t, f, "reset", "h01")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "reset h01"))

	out, err = run(t, f, "list", "h01", "weights")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestList_Errors(t *testing.T) {
	f := sharedFactory()

	_, err := run(t, f, "list", "zz", "weights")
	assert.Error(t, err)

	_, err = run(t, f, "list", "h01", "grooming")
	assert.Error(t, err)
}

func TestFlagAndRanges(t *testing.T) {
	out, err := run(t, nil, "flag", "WBC", "12.1")
	require.NoError(t, err)
	assert.Contains(t, out, "High")

	out, err = run(t, nil, "flag", "XYZ", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Unclassified")

	out, err = run(t, nil, "ranges", "--group", "electrolytes")
	require.NoError(t, err)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "NA")
	assert.NotContains(t, out, "WBC")
}
