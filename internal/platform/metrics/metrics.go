package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "horse_medical"

// Metrics agrupa los collectors del servicio sobre un registry propio
// (no el global, así los tests pueden crear varios).
type Metrics struct {
	registry *prometheus.Registry

	storeOps    *prometheus.CounterVec
	labFlags    *prometheus.CounterVec
	seededTotal *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Operaciones sobre el record store por dominio, operación y resultado.",
		}, []string{"domain", "op", "result"}),
		labFlags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lab_flags_total",
			Help:      "Clasificaciones de valores de laboratorio por resultado.",
		}, []string{"classification"}),
		seededTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seeded_records_total",
			Help:      "Registros sintéticos escritos por el seeder, por dominio.",
		}, []string{"domain"}),
	}
	reg.MustRegister(m.storeOps, m.labFlags, m.seededTotal)
	return m
}

// StoreOp registra una operación del store. Nil-safe.
func (m *Metrics) StoreOp(domain, op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storeOps.WithLabelValues(domain, op, result).Inc()
}

// LabFlag cuenta una clasificación (Low/Normal/High/Unclassified). Nil-safe.
func (m *Metrics) LabFlag(classification string) {
	if m == nil {
		return
	}
	m.labFlags.WithLabelValues(classification).Inc()
}

// Seeded suma n registros sembrados para domain. Nil-safe.
func (m *Metrics) Seeded(domain string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.seededTotal.WithLabelValues(domain).Add(float64(n))
}

// Registry expone el registry (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler sirve /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
