package care

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"horse-medical-records/internal/domain/records"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	doc *records.Document[Book]
}

func NewService(deps records.Deps) *Service {
	return &Service{doc: records.NewDocument[Book](records.DomainCare, deps, normalizeBook)}
}

// Book devuelve las nueve categorías (siempre presentes) en orden de storage.
func (s *Service) Book(ctx context.Context, horseID string) Book {
	return s.doc.Load(ctx, horseID)
}

// History devuelve cada categoría ordenada por fecha desc.
func (s *Service) History(ctx context.Context, horseID string) Book {
	return s.doc.Load(ctx, horseID).Sorted()
}

// List devuelve una categoría en orden de storage.
func (s *Service) List(ctx context.Context, horseID string, c Category) ([]Entry, error) {
	if _, ok := ParseCategory(string(c)); !ok {
		return nil, ErrUnknownCategory
	}
	return s.doc.Load(ctx, horseID).Entries(c), nil
}

// Append asigna id/createdAt a e, lo antepone en su categoría y reescribe el libro.
// Las otras ocho categorías quedan intactas.
func (s *Service) Append(ctx context.Context, horseID string, e Entry) (Entry, error) {
	if strings.TrimSpace(horseID) == "" || isNilEntry(e) {
		return nil, ErrInvalidInput
	}
	b := e.base()
	b.Name = strings.TrimSpace(b.Name)
	b.Notes = strings.TrimSpace(b.Notes)
	if b.Name == "" || b.Date.IsZero() {
		return nil, ErrInvalidInput
	}
	b.Stamp(s.doc.NewMeta())

	book, err := s.doc.Read(ctx, horseID)
	if err != nil {
		return nil, fmt.Errorf("read care: %w", err)
	}
	if err := book.add(e); err != nil {
		return nil, err
	}
	if err := s.doc.Save(ctx, horseID, book); err != nil {
		return nil, err
	}
	return e, nil
}

// isNilEntry detecta también los punteros nil tipados, ej. (*Vaccination)(nil).
func isNilEntry(e Entry) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Vaccination:
		return v == nil
	case *Deworming:
		return v == nil
	case *Medication:
		return v == nil
	case *Allergy:
		return v == nil
	case *Injury:
		return v == nil
	case *Surgery:
		return v == nil
	case *Dental:
		return v == nil
	case *Farrier:
		return v == nil
	case *Imaging:
		return v == nil
	}
	return false
}

// Document expone el documento crudo (seeder).
func (s *Service) Document() *records.Document[Book] {
	return s.doc
}
