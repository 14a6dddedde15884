package bloodtests

import (
	"context"
	"testing"
	"time"

	"horse-medical-records/internal/adapters/storage/memory"
	"horse-medical-records/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create_FiltersValues(t *testing.T) {
	ctx := context.Background()
	svc := NewService(records.Deps{KV: memory.NewKV()})

	rec, err := svc.Create(ctx, "h02", CreateInput{
		Date:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Doctor:   "Dr. Ruiz",
		SampleID: " S-100 ",
		RawValues: map[string]string{
			"WBC":     "15.2",
			"HCT":     "40",
			"GLU":     "",
			"CK":      "n/a",
			"MYSTERY": "3",
			" K ":     "2.0",
		},
		QC: QC{Hemolysis: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "S-100", rec.SampleID)
	assert.Equal(t, map[string]float64{"WBC": 15.2, "HCT": 40, "K": 2.0}, rec.Values)
	assert.True(t, rec.QC.Hemolysis)

	results := rec.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "WBC", results[0].Key)
	assert.Equal(t, High, results[0].Flag)
	assert.Equal(t, "HCT", results[1].Key)
	assert.Equal(t, Normal, results[1].Flag)
	assert.Equal(t, "K", results[2].Key)
	assert.Equal(t, Low, results[2].Flag)
	assert.Equal(t, 2, rec.Abnormal())

	stored := svc.List(ctx, "h02")
	require.Len(t, stored, 1)
	assert.Equal(t, rec.Values, stored[0].Values)
}

func TestService_History(t *testing.T) {
	ctx := context.Background()
	svc := NewService(records.Deps{KV: memory.NewKV()})

	_, err := svc.Create(ctx, "h02", CreateInput{Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "h02", CreateInput{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	hist := svc.History(ctx, "h02")
	require.Len(t, hist, 2)
	assert.Equal(t, 2026, hist[0].Date.Year())

	_, err = svc.Create(ctx, "h02", CreateInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
