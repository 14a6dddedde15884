package horses

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("horse not found")
)

type Service struct {
	roster Roster
}

func NewService(roster Roster) *Service {
	return &Service{roster: roster}
}

func (s *Service) List(ctx context.Context) ([]Horse, error) {
	return s.roster.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Horse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Horse{}, ErrInvalidInput
	}
	h, err := s.roster.GetByID(ctx, id)
	if err != nil {
		return Horse{}, ErrNotFound
	}
	return h, nil
}

// First devuelve los primeros n caballos del roster (n<=0 => ninguno).
func (s *Service) First(ctx context.Context, n int) ([]Horse, error) {
	if n <= 0 {
		return []Horse{}, nil
	}
	all, err := s.roster.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}
