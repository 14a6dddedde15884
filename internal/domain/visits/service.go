package visits

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
	return &Service{col: records.NewCollection[Record](records.DomainVisits, deps)}
}

type CreateInput struct {
	Date       time.Time
	Doctor     string
	Reason     string
	Vitals     Vitals
	Attitude   Attitude
	Appetite   Appetite
	Limbs      Limbs
	Systems    SystemNotes
	Assessment string
	Plan       string
	Notes      string
}

func (s *Service) Create(ctx context.Context, horseID string, in CreateInput) (Record, error) {
	if strings.TrimSpace(horseID) == "" {
		return Record{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Record{}, ErrInvalidInput
	}

	return s.col.Append(ctx, horseID, Record{
		Date:       in.Date,
		Doctor:     strings.TrimSpace(in.Doctor),
		Reason:     strings.TrimSpace(in.Reason),
		Vitals:     in.Vitals,
		Attitude:   in.Attitude,
		Appetite:   in.Appetite,
		Limbs:      normalizeLimbs(in.Limbs),
		Systems:    in.Systems,
		Assessment: strings.TrimSpace(in.Assessment),
		Plan:       strings.TrimSpace(in.Plan),
		Notes:      strings.TrimSpace(in.Notes),
	})
}

func (s *Service) List(ctx context.Context, horseID string) []Record {
	return s.col.List(ctx, horseID)
}

// History devuelve las visitas por fecha desc.
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
