package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.StoreOp("weights", "append", nil)
	m.StoreOp("weights", "append", nil)
	m.StoreOp("weights", "append", errors.New("boom"))
	m.LabFlag("High")
	m.Seeded("care", 4)
	m.Seeded("care", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.storeOps.WithLabelValues("weights", "append", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("weights", "append", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.labFlags.WithLabelValues("High")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.seededTotal.WithLabelValues("care")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.StoreOp("visits", "list", nil)
		m.LabFlag("Low")
		m.Seeded("weights", 2)
	})
}
