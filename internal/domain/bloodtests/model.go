package bloodtests

import (
	"time"

	"horse-medical-records/internal/domain/records"
)

// QC son los flags de calidad de la muestra.
type QC struct {
	Hemolysis bool `json:"hemolysis"`
	Lipemia   bool `json:"lipemia"`
	Icterus   bool `json:"icterus"`
}

// Record es un panel de sangre. Values solo contiene keys de la tabla de referencia.
type Record struct {
	records.Meta
	Date      time.Time          `json:"date"`
	Doctor    string             `json:"doctor"`
	Device    string             `json:"device"`
	SampleID  string             `json:"sampleId"`
	PatientID string             `json:"patientId"`
	Values    map[string]float64 `json:"values"`
	QC        QC                 `json:"qc"`
	Notes     string             `json:"notes"`
}

// Result es un valor del panel con su rango y clasificación (vista de lectura).
type Result struct {
	Range
	Value float64        `json:"value"`
	Flag  Classification `json:"flag"`
}

// Results arma la vista del panel en el orden de la tabla; omite parámetros sin valor.
func (r Record) Results() []Result {
	out := make([]Result, 0, len(r.Values))
	for _, ref := range referenceTable {
		v, ok := r.Values[ref.Key]
		if !ok {
			continue
		}
		out = append(out, Result{Range: ref, Value: v, Flag: FlagValue(ref.Key, v)})
	}
	return out
}

// Abnormal cuenta los valores fuera de rango.
func (r Record) Abnormal() int {
	n := 0
	for k, v := range r.Values {
		if c := FlagValue(k, v); c == Low || c == High {
			n++
		}
	}
	return n
}
