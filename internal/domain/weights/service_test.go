package weights

import (
	"context"
	"testing"
	"time"

	"horse-medical-records/internal/adapters/storage/memory"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/ports/ids"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(now time.Time) *Service {
	return NewService(records.Deps{
		KV:  memory.NewKV(),
		IDs: &ids.Counter{Prefix: "w"},
		Now: func() time.Time { return now },
	})
}

func TestService_Create_DefaultsAndPrepend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	first, err := svc.Create(ctx, "h01", CreateInput{
		WeightKg: 512.5,
		DateTime: now.Add(-48 * time.Hour),
		Method:   "whatever",
		Notes:    "  after ride ",
	})
	require.NoError(t, err)
	assert.Equal(t, MethodManual, first.Method)
	assert.Equal(t, RecordedByStaff, first.RecordedBy)
	assert.Equal(t, "after ride", first.Notes)
	assert.Equal(t, "w-1", first.ID)
	assert.False(t, first.CreatedAt.Before(now))

	second, err := svc.Create(ctx, "h01", CreateInput{
		WeightKg:   509,
		DateTime:   now.Add(-72 * time.Hour),
		Method:     MethodScale,
		RecordedBy: RecordedByDoctor,
	})
	require.NoError(t, err)

	list := svc.List(ctx, "h01")
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "último insertado en el índice 0")

	hist := svc.History(ctx, "h01")
	require.Len(t, hist, 2)
	assert.Equal(t, first.ID, hist[0].ID, "historial por fecha desc")

	latest, ok := svc.Latest(ctx, "h01")
	require.True(t, ok)
	assert.Equal(t, 512.5, latest.WeightKg)
}

func TestService_Create_Invalid(t *testing.T) {
	svc := newTestService(time.Now())
	ctx := context.Background()

	cases := []struct {
		name    string
		horseID string
		in      CreateInput
	}{
		{"sin caballo", "", CreateInput{WeightKg: 400, DateTime: time.Now()}},
		{"peso cero", "h01", CreateInput{WeightKg: 0, DateTime: time.Now()}},
		{"peso negativo", "h01", CreateInput{WeightKg: -3, DateTime: time.Now()}},
		{"sin fecha", "h01", CreateInput{WeightKg: 400}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.horseID, tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Empty(t, svc.List(ctx, "h01"))
	_, ok := svc.Latest(ctx, "h01")
	assert.False(t, ok)
}
