package weights

import (
	"time"

	"horse-medical-records/internal/domain/records"
)

// Method indica cómo se obtuvo el peso.
// @Enum Scale, Manual
type Method string

const (
	MethodScale  Method = "Scale"
	MethodManual Method = "Manual"
)

// RecordedBy indica quién registró el peso.
// @Enum Doctor, Staff
type RecordedBy string

const (
	RecordedByDoctor RecordedBy = "Doctor"
	RecordedByStaff  RecordedBy = "Staff"
)

// Record es un pesaje. Se crea una vez y no se modifica.
type Record struct {
	records.Meta
	WeightKg   float64    `json:"weightKg"`
	DateTime   time.Time  `json:"dateTime"`
	Method     Method     `json:"method"`
	RecordedBy RecordedBy `json:"recordedBy"`
	Notes      string     `json:"notes"`
}
