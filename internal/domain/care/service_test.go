package care

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"horse-medical-records/internal/adapters/storage/memory"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/ports/ids"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func newTestService() (*Service, *memory.KV) {
	kv := memory.NewKV()
	return NewService(records.Deps{KV: kv, IDs: &ids.Counter{Prefix: "c"}}), kv
}

// flakyKV falla los Get a pedido; los Set siguen funcionando.
type flakyKV struct {
	*memory.KV
	failGet bool
}

func (f *flakyKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errors.New("kv: unavailable")
	}
	return f.KV.Get(ctx, key)
}

func TestService_Book_EmptyHasAllCategories(t *testing.T) {
	svc, _ := newTestService()

	b := svc.Book(context.Background(), "h01")
	assert.True(t, b.Empty())

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var m map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	require.Len(t, m, len(Categories))
	for _, c := range Categories {
		v, ok := m[string(c)]
		assert.True(t, ok, c)
		assert.NotNil(t, v, "%s debe ser [] y no null", c)
		assert.Empty(t, v)
	}
}

func TestService_Append_LeavesOtherCategoriesUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Append(ctx, "h01", &Deworming{Base: Base{Date: day(1), Name: "Ivermectin"}, Dosage: "1 tube"})
	require.NoError(t, err)
	_, err = svc.Append(ctx, "h01", &Medication{Base: Base{Date: day(2), Name: "Bute"}, Frequency: "q12h"})
	require.NoError(t, err)
	before := svc.Book(ctx, "h01")

	saved, err := svc.Append(ctx, "h01", &Vaccination{Base: Base{Date: day(5), Name: " EHV-1/4 "}, Brand: "Prodigy"})
	require.NoError(t, err)

	v := saved.(*Vaccination)
	assert.Equal(t, "c-3", v.ID)
	assert.Equal(t, "EHV-1/4", v.Name)
	assert.False(t, v.CreatedAt.IsZero())

	after := svc.Book(ctx, "h01")
	assert.Equal(t, 1, after.Len(CategoryVaccinations))
	assert.Equal(t, before.Deworming, after.Deworming)
	assert.Equal(t, before.Medications, after.Medications)
	for _, c := range Categories {
		if c == CategoryVaccinations {
			continue
		}
		assert.Equal(t, before.Len(c), after.Len(c), c)
	}
	assert.Equal(t, 3, after.Total())
}

func TestService_Append_PrependsAndHistorySorts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	for _, d := range []int{10, 2, 20} {
		_, err := svc.Append(ctx, "h01", &Farrier{Base: Base{Date: day(d), Name: "Trim"}})
		require.NoError(t, err)
	}

	stored := svc.Book(ctx, "h01").Farrier
	require.Len(t, stored, 3)
	assert.Equal(t, 20, stored[0].Date.Day(), "último insertado primero")
	assert.Equal(t, 2, stored[1].Date.Day())

	hist := svc.History(ctx, "h01").Farrier
	assert.Equal(t, 20, hist[0].Date.Day())
	assert.Equal(t, 10, hist[1].Date.Day())
	assert.Equal(t, 2, hist[2].Date.Day())

	entries, err := svc.List(ctx, "h01", CategoryFarrier)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, CategoryFarrier, entries[0].Category())

	_, err = svc.List(ctx, "h01", Category("grooming"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestService_Append_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Append(ctx, "h01", &Allergy{Base: Base{Date: day(1)}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Append(ctx, "h01", &Allergy{Base: Base{Name: "Penicillin"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Append(ctx, "", &Allergy{Base: Base{Date: day(1), Name: "Penicillin"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Append(ctx, "h01", (*Vaccination)(nil))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Append(ctx, "h01", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.True(t, svc.Book(ctx, "h01").Empty())
}

func TestService_Append_ReadFailureLeavesBookUntouched(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{KV: memory.NewKV()}
	svc := NewService(records.Deps{KV: kv, IDs: &ids.Counter{Prefix: "c"}})

	_, err := svc.Append(ctx, "h01", &Dental{Base: Base{Date: day(2), Name: "Float"}})
	require.NoError(t, err)
	_, err = svc.Append(ctx, "h01", &Deworming{Base: Base{Date: day(3), Name: "Ivermectin"}})
	require.NoError(t, err)

	key := records.Key("h01", records.DomainCare)
	before, _, _ := kv.KV.Get(ctx, key)

	kv.failGet = true
	_, err = svc.Append(ctx, "h01", &Vaccination{Base: Base{Date: day(4), Name: "Influenza"}})
	require.Error(t, err)

	after, _, _ := kv.KV.Get(ctx, key)
	assert.Equal(t, before, after)

	kv.failGet = false
	b := svc.Book(ctx, "h01")
	assert.Len(t, b.Dental, 1)
	assert.Len(t, b.Deworming, 1)
	assert.Empty(t, b.Vaccinations)
}

func TestService_Book_InitializesMissingCategoriesFromOldValue(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService()

	require.NoError(t, kv.Set(ctx, records.Key("h01", records.DomainCare),
		`{"dental":[{"id":"d1","date":"2025-10-01T00:00:00Z","name":"Float","createdAt":"2025-10-01T00:00:00Z"}]}`))

	b := svc.Book(ctx, "h01")
	require.Len(t, b.Dental, 1)
	assert.Equal(t, "d1", b.Dental[0].ID)
	assert.NotNil(t, b.Imaging)

	_, err := svc.Append(ctx, "h01", &Imaging{Base: Base{Date: day(1), Name: "Radiographs"}, Region: "LF fetlock"})
	require.NoError(t, err)

	b = svc.Book(ctx, "h01")
	assert.Len(t, b.Dental, 1)
	assert.Len(t, b.Imaging, 1)
}

func TestNewEntry_CoversAllCategories(t *testing.T) {
	for _, c := range Categories {
		e, ok := NewEntry(c)
		require.True(t, ok, c)
		assert.Equal(t, c, e.Category())
	}
	_, ok := NewEntry("grooming")
	assert.False(t, ok)

	got, ok := ParseCategory("dental")
	assert.True(t, ok)
	assert.Equal(t, CategoryDental, got)
}
