package bloodtests

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"horse-medical-records/internal/domain/records"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	col *records.Collection[Record, *Record]
}

func NewService(deps records.Deps) *Service {
	return &Service{col: records.NewCollection[Record](records.DomainBloodTests, deps)}
}

type CreateInput struct {
	Date      time.Time
	Doctor    string
	Device    string
	SampleID  string
	PatientID string
	// RawValues son los valores tal como vienen del formulario (key -> texto).
	RawValues map[string]string
	QC        QC
	Notes     string
}

// Create guarda el panel. Valores vacíos, no numéricos o de parámetros
// desconocidos se descartan (no es error).
func (s *Service) Create(ctx context.Context, horseID string, in CreateInput) (Record, error) {
	if strings.TrimSpace(horseID) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Record{}, ErrInvalidInput
	}

	return s.col.Append(ctx, horseID, Record{
		Date:      in.Date,
		Doctor:    strings.TrimSpace(in.Doctor),
		Device:    strings.TrimSpace(in.Device),
		SampleID:  strings.TrimSpace(in.SampleID),
		PatientID: strings.TrimSpace(in.PatientID),
		Values:    ParseValues(in.RawValues),
		QC:        in.QC,
		Notes:     strings.TrimSpace(in.Notes),
	})
}

// ParseValues filtra y parsea los valores crudos del formulario.
func ParseValues(raw map[string]string) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for k, rv := range raw {
		k = strings.TrimSpace(k)
		if _, ok := referenceByKey[k]; !ok {
			continue
		}
		v, ok := parseValue(rv)
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}

func (s *Service) List(ctx context.Context, horseID string) []Record {
	return s.col.List(ctx, horseID)
}

// History devuelve los paneles por fecha desc.
func (s *Service) History(ctx context.Context, horseID string) []Record {
	items := s.col.List(ctx, horseID)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items
}

func (s *Service) Collection() *records.Collection[Record, *Record] {
	return s.col
}
