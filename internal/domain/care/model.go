package care

import (
	"time"

	"horse-medical-records/internal/domain/records"
)

// Category es una de las nueve sub-colecciones de cuidados médicos.
type Category string

const (
	CategoryVaccinations Category = "vaccinations"
	CategoryDeworming    Category = "deworming"
	CategoryMedications  Category = "medications"
	CategoryAllergies    Category = "allergies"
	CategoryInjuries     Category = "injuries"
	CategorySurgeries    Category = "surgeries"
	CategoryDental       Category = "dental"
	CategoryFarrier      Category = "farrier"
	CategoryImaging      Category = "imaging"
)

// Categories en orden de presentación.
var Categories = []Category{
	CategoryVaccinations,
	CategoryDeworming,
	CategoryMedications,
	CategoryAllergies,
	CategoryInjuries,
	CategorySurgeries,
	CategoryDental,
	CategoryFarrier,
	CategoryImaging,
}

// ParseCategory valida el nombre de categoría.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Severity para alergias y lesiones.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Base son los campos comunes a todas las categorías.
type Base struct {
	records.Meta
	Date  time.Time `json:"date"`
	Name  string    `json:"name"`
	Notes string    `json:"notes,omitempty"`
}

// OccurredOn es la fecha usada para ordenar el historial.
func (b Base) OccurredOn() time.Time { return b.Date }

func (b *Base) base() *Base { return b }

// Entry es cualquier registro de cuidados (un caso por categoría).
type Entry interface {
	Category() Category
	OccurredOn() time.Time
	base() *Base
}

type Vaccination struct {
	Base
	Brand          string     `json:"brand,omitempty"`
	LotNumber      string     `json:"lotNumber,omitempty"`
	AdministeredBy string     `json:"administeredBy,omitempty"`
	NextDue        *time.Time `json:"nextDue,omitempty"`
}

type Deworming struct {
	Base
	Brand   string     `json:"brand,omitempty"`
	Dosage  string     `json:"dosage,omitempty"`
	NextDue *time.Time `json:"nextDue,omitempty"`
}

type Medication struct {
	Base
	Dosage       string     `json:"dosage,omitempty"`
	Frequency    string     `json:"frequency,omitempty"`
	Route        string     `json:"route,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	PrescribedBy string     `json:"prescribedBy,omitempty"`
}

type Allergy struct {
	Base
	Reaction string   `json:"reaction,omitempty"`
	Severity Severity `json:"severity,omitempty"`
}

type Injury struct {
	Base
	Location  string   `json:"location,omitempty"`
	Severity  Severity `json:"severity,omitempty"`
	Treatment string   `json:"treatment,omitempty"`
	Outcome   string   `json:"outcome,omitempty"`
}

type Surgery struct {
	Base
	Procedure  string `json:"procedure,omitempty"`
	Surgeon    string `json:"surgeon,omitempty"`
	Anesthesia string `json:"anesthesia,omitempty"`
	Outcome    string `json:"outcome,omitempty"`
}

type Dental struct {
	Base
	Procedure    string `json:"procedure,omitempty"`
	Findings     string `json:"findings,omitempty"`
	Practitioner string `json:"practitioner,omitempty"`
}

type Farrier struct {
	Base
	Procedure string `json:"procedure,omitempty"`
	Farrier   string `json:"farrier,omitempty"`
	ShoeType  string `json:"shoeType,omitempty"`
}

type Imaging struct {
	Base
	Modality   string `json:"modality,omitempty"` // radiography, ultrasound, ...
	Region     string `json:"region,omitempty"`
	Findings   string `json:"findings,omitempty"`
	Attachment string `json:"attachment,omitempty"` // referencia/URL al estudio
}

func (*Vaccination) Category() Category { return CategoryVaccinations }
func (*Deworming) Category() Category   { return CategoryDeworming }
func (*Medication) Category() Category  { return CategoryMedications }
func (*Allergy) Category() Category     { return CategoryAllergies }
func (*Injury) Category() Category      { return CategoryInjuries }
func (*Surgery) Category() Category     { return CategorySurgeries }
func (*Dental) Category() Category      { return CategoryDental }
func (*Farrier) Category() Category     { return CategoryFarrier }
func (*Imaging) Category() Category     { return CategoryImaging }

// NewEntry devuelve un registro vacío de la categoría (para decodificar formularios).
func NewEntry(c Category) (Entry, bool) {
	switch c {
	case CategoryVaccinations:
		return &Vaccination{}, true
	case CategoryDeworming:
		return &Deworming{}, true
	case CategoryMedications:
		return &Medication{}, true
	case CategoryAllergies:
		return &Allergy{}, true
	case CategoryInjuries:
		return &Injury{}, true
	case CategorySurgeries:
		return &Surgery{}, true
	case CategoryDental:
		return &Dental{}, true
	case CategoryFarrier:
		return &Farrier{}, true
	case CategoryImaging:
		return &Imaging{}, true
	}
	return nil, false
}
