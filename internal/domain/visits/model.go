package visits

import (
	"time"

	"horse-medical-records/internal/domain/records"
)

// Attitude / actitud general observada en el examen.
type Attitude string

const (
	AttitudeBAR       Attitude = "BAR" // bright, alert, responsive
	AttitudeQAR       Attitude = "QAR"
	AttitudeDull      Attitude = "Dull"
	AttitudeDepressed Attitude = "Depressed"
)

type Appetite string

const (
	AppetiteNormal    Appetite = "Normal"
	AppetiteReduced   Appetite = "Reduced"
	AppetiteIncreased Appetite = "Increased"
	AppetiteAbsent    Appetite = "Absent"
)

// MaxLamenessGrade es el máximo de la escala AAEP (0-5).
const MaxLamenessGrade = 5

// Vitals son las constantes fisiológicas del examen.
type Vitals struct {
	TemperatureC       *float64 `json:"temperatureC,omitempty"`
	HeartRate          *int     `json:"heartRate,omitempty"`       // lpm
	RespiratoryRate    *int     `json:"respiratoryRate,omitempty"` // rpm
	CapillaryRefillSec *float64 `json:"capillaryRefillSec,omitempty"`
	MucousMembranes    string   `json:"mucousMembranes,omitempty"`
	Hydration          string   `json:"hydration,omitempty"`
	GutSounds          string   `json:"gutSounds,omitempty"`
}

// Limb es el hallazgo por miembro.
type Limb struct {
	Tags          []string `json:"tags"`
	LamenessGrade int      `json:"lamenessGrade"`
	Notes         string   `json:"notes"`
}

// Limbs siempre serializa exactamente LF, RF, LH, RH.
type Limbs struct {
	LF Limb `json:"LF"`
	RF Limb `json:"RF"`
	LH Limb `json:"LH"`
	RH Limb `json:"RH"`
}

// SystemNotes son notas libres por sistema orgánico.
type SystemNotes struct {
	Cardiovascular   string `json:"cardiovascular"`
	Respiratory      string `json:"respiratory"`
	Gastrointestinal string `json:"gastrointestinal"`
	Musculoskeletal  string `json:"musculoskeletal"`
	Neurologic       string `json:"neurologic"`
	Integumentary    string `json:"integumentary"`
	Ophthalmic       string `json:"ophthalmic"`
	Reproductive     string `json:"reproductive"`
}

// Record es una visita / examen físico.
type Record struct {
	records.Meta
	Date       time.Time   `json:"date"`
	Doctor     string      `json:"doctor"`
	Reason     string      `json:"reason"`
	Vitals     Vitals      `json:"vitals"`
	Attitude   Attitude    `json:"attitude"`
	Appetite   Appetite    `json:"appetite"`
	Limbs      Limbs       `json:"limbs"`
	Systems    SystemNotes `json:"systems"`
	Assessment string      `json:"assessment"`
	Plan       string      `json:"plan"`
	Notes      string      `json:"notes"`
}
