package care

import (
	"errors"
	"sort"
	"time"
)

var ErrUnknownCategory = errors.New("unknown care category")

// Book es el valor guardado en horse_medical_{id}_care: categoría -> array.
// Índice 0 de cada array = último insertado.
type Book struct {
	Vaccinations []Vaccination `json:"vaccinations"`
	Deworming    []Deworming   `json:"deworming"`
	Medications  []Medication  `json:"medications"`
	Allergies    []Allergy     `json:"allergies"`
	Injuries     []Injury      `json:"injuries"`
	Surgeries    []Surgery     `json:"surgeries"`
	Dental       []Dental      `json:"dental"`
	Farrier      []Farrier     `json:"farrier"`
	Imaging      []Imaging     `json:"imaging"`
}

// normalizeBook inicializa las categorías ausentes a array vacío.
func normalizeBook(b *Book) {
	orEmpty(&b.Vaccinations)
	orEmpty(&b.Deworming)
	orEmpty(&b.Medications)
	orEmpty(&b.Allergies)
	orEmpty(&b.Injuries)
	orEmpty(&b.Surgeries)
	orEmpty(&b.Dental)
	orEmpty(&b.Farrier)
	orEmpty(&b.Imaging)
}

func orEmpty[T any](s *[]T) {
	if *s == nil {
		*s = []T{}
	}
}

func prepend[T any](s []T, v T) []T {
	return append([]T{v}, s...)
}

// add antepone e en su categoría; las demás no se tocan.
func (b *Book) add(e Entry) error {
	switch v := e.(type) {
	case *Vaccination:
		b.Vaccinations = prepend(b.Vaccinations, *v)
	case *Deworming:
		b.Deworming = prepend(b.Deworming, *v)
	case *Medication:
		b.Medications = prepend(b.Medications, *v)
	case *Allergy:
		b.Allergies = prepend(b.Allergies, *v)
	case *Injury:
		b.Injuries = prepend(b.Injuries, *v)
	case *Surgery:
		b.Surgeries = prepend(b.Surgeries, *v)
	case *Dental:
		b.Dental = prepend(b.Dental, *v)
	case *Farrier:
		b.Farrier = prepend(b.Farrier, *v)
	case *Imaging:
		b.Imaging = prepend(b.Imaging, *v)
	default:
		return ErrUnknownCategory
	}
	return nil
}

// Len devuelve la cantidad de registros de la categoría.
func (b Book) Len(c Category) int {
	return len(b.Entries(c))
}

// Entries devuelve los registros de una categoría como Entry (punteros a copias).
func (b Book) Entries(c Category) []Entry {
	switch c {
	case CategoryVaccinations:
		return entries(b.Vaccinations)
	case CategoryDeworming:
		return entries(b.Deworming)
	case CategoryMedications:
		return entries(b.Medications)
	case CategoryAllergies:
		return entries(b.Allergies)
	case CategoryInjuries:
		return entries(b.Injuries)
	case CategorySurgeries:
		return entries(b.Surgeries)
	case CategoryDental:
		return entries(b.Dental)
	case CategoryFarrier:
		return entries(b.Farrier)
	case CategoryImaging:
		return entries(b.Imaging)
	}
	return nil
}

func entries[T any, P interface {
	*T
	Entry
}](s []T) []Entry {
	out := make([]Entry, 0, len(s))
	for i := range s {
		v := s[i]
		out = append(out, P(&v))
	}
	return out
}

// Total cuenta todos los registros del libro.
func (b Book) Total() int {
	n := 0
	for _, c := range Categories {
		n += b.Len(c)
	}
	return n
}

// Empty es true si las nueve categorías están vacías.
func (b Book) Empty() bool { return b.Total() == 0 }

type dated interface {
	OccurredOn() time.Time
}

func byDateDesc[T dated](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredOn().After(out[j].OccurredOn())
	})
	return out
}

// Sorted devuelve una copia con cada categoría ordenada por fecha desc.
func (b Book) Sorted() Book {
	return Book{
		Vaccinations: byDateDesc(b.Vaccinations),
		Deworming:    byDateDesc(b.Deworming),
		Medications:  byDateDesc(b.Medications),
		Allergies:    byDateDesc(b.Allergies),
		Injuries:     byDateDesc(b.Injuries),
		Surgeries:    byDateDesc(b.Surgeries),
		Dental:       byDateDesc(b.Dental),
		Farrier:      byDateDesc(b.Farrier),
		Imaging:      byDateDesc(b.Imaging),
	}
}
