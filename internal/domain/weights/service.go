package weights

import (
	"context"
	"errors"
	"math"
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
	return &Service{col: records.NewCollection[Record](records.DomainWeights, deps)}
}

type CreateInput struct {
	WeightKg   float64
	DateTime   time.Time
	Method     Method
	RecordedBy RecordedBy
	Notes      string
}

func (s *Service) Create(ctx context.Context, horseID string, in CreateInput) (Record, error) {
	if strings.TrimSpace(horseID) == "" {
		return Record{}, ErrInvalidInput
	}
	if math.IsNaN(in.WeightKg) || math.IsInf(in.WeightKg, 0) || in.WeightKg <= 0 {
		return Record{}, ErrInvalidInput
	}
	if in.DateTime.IsZero() {
		return Record{}, ErrInvalidInput
	}

	method := in.Method
	if method != MethodScale {
		method = MethodManual
	}
	by := in.RecordedBy
	if by != RecordedByDoctor {
		by = RecordedByStaff
	}

	return s.col.Append(ctx, horseID, Record{
		WeightKg:   in.WeightKg,
		DateTime:   in.DateTime,
		Method:     method,
		RecordedBy: by,
		Notes:      strings.TrimSpace(in.Notes),
	})
}

// List devuelve los pesajes en orden de storage (último insertado primero).
func (s *Service) List(ctx context.Context, horseID string) []Record {
	return s.col.List(ctx, horseID)
}

// History devuelve los pesajes por dateTime desc (vista de historial).
func (s *Service) History(ctx context.Context, horseID string) []Record {
	items := s.col.List(ctx, horseID)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DateTime.After(items[j].DateTime)
	})
	return items
}

// Latest devuelve el pesaje más reciente por fecha, si hay.
func (s *Service) Latest(ctx context.Context, horseID string) (Record, bool) {
	items := s.History(ctx, horseID)
	if len(items) == 0 {
		return Record{}, false
	}
	return items[0], true
}

// Collection expone la colección cruda (seeder).
func (s *Service) Collection() *records.Collection[Record, *Record] {
	return s.col
}
