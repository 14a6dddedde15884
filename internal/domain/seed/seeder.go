package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"horse-medical-records/internal/domain/bloodtests"
	"horse-medical-records/internal/domain/care"
	"horse-medical-records/internal/domain/horses"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/domain/visits"
	"horse-medical-records/internal/domain/weights"
	"horse-medical-records/internal/platform/logger"
	"horse-medical-records/internal/platform/metrics"
)

// DefaultHorses es cuántos caballos del roster reciben historial sintético.
const DefaultHorses = 15

type Options struct {
	Horses  int // <=0 => DefaultHorses
	Now     func() time.Time
	Log     logger.Logger
	Metrics *metrics.Metrics
}

// Seeder puebla historial sintético para los primeros N caballos, una sola vez
// por caballo y dominio: un dominio con datos nunca se vuelve a sembrar.
type Seeder struct {
	horses     *horses.Service
	weights    *weights.Service
	visits     *visits.Service
	bloodtests *bloodtests.Service
	care       *care.Service

	n       int
	now     func() time.Time
	log     logger.Logger
	metrics *metrics.Metrics
}

func New(
	horsesSvc *horses.Service,
	weightsSvc *weights.Service,
	visitsSvc *visits.Service,
	bloodSvc *bloodtests.Service,
	careSvc *care.Service,
	opts Options,
) *Seeder {
	s := &Seeder{
		horses:     horsesSvc,
		weights:    weightsSvc,
		visits:     visitsSvc,
		bloodtests: bloodSvc,
		care:       careSvc,
		n:          opts.Horses,
		now:        opts.Now,
		log:        opts.Log,
		metrics:    opts.Metrics,
	}
	if s.n <= 0 {
		s.n = DefaultHorses
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	return s
}

// WithHorses devuelve una copia del seeder que siembra n caballos.
func (s *Seeder) WithHorses(n int) *Seeder {
	cp := *s
	if n > 0 {
		cp.n = n
	}
	return &cp
}

// Report resume una corrida: registros escritos y dominios salteados (ya tenían datos).
type Report struct {
	Horses  int                    `json:"horses"`
	Records map[records.Domain]int `json:"records"`
	Skipped map[records.Domain]int `json:"skipped"`
}

func (r Report) Total() int {
	n := 0
	for _, v := range r.Records {
		n += v
	}
	return n
}

// Run siembra los dominios vacíos. Errores de escritura no cortan la corrida;
// se devuelven juntos al final.
func (s *Seeder) Run(ctx context.Context) (Report, error) {
	rep := Report{
		Records: map[records.Domain]int{},
		Skipped: map[records.Domain]int{},
	}

	list, err := s.horses.First(ctx, s.n)
	if err != nil {
		return rep, fmt.Errorf("seed: roster: %w", err)
	}

	ref := s.now().UTC().Truncate(24 * time.Hour)

	var errs []error
	for i, h := range list {
		rep.Horses++
		for _, d := range records.Domains {
			n, err := s.seedDomain(ctx, d, i, h.ID, ref)
			if err != nil {
				errs = append(errs, fmt.Errorf("seed %s/%s: %w", h.ID, d, err))
				continue
			}
			if n == 0 {
				rep.Skipped[d]++
				continue
			}
			rep.Records[d] += n
			s.metrics.Seeded(string(d), n)
		}
	}

	s.log.Info("sample data seeded", map[string]any{
		"horses":  rep.Horses,
		"records": rep.Total(),
	})
	return rep, errors.Join(errs...)
}

// seedDomain devuelve cuántos registros escribió (0 si el dominio ya tenía datos).
// Si el substrate no se puede leer no escribe nada.
func (s *Seeder) seedDomain(ctx context.Context, d records.Domain, i int, horseID string, ref time.Time) (int, error) {
	switch d {
	case records.DomainWeights:
		current, err := s.weights.Collection().Read(ctx, horseID)
		if err != nil {
			return 0, err
		}
		if len(current) > 0 {
			return 0, nil
		}
		items := synthWeights(i, horseID, ref)
		return len(items), s.weights.Collection().Write(ctx, horseID, items)

	case records.DomainVisits:
		current, err := s.visits.Collection().Read(ctx, horseID)
		if err != nil {
			return 0, err
		}
		if len(current) > 0 {
			return 0, nil
		}
		items := synthVisits(i, horseID, ref)
		return len(items), s.visits.Collection().Write(ctx, horseID, items)

	case records.DomainBloodTests:
		current, err := s.bloodtests.Collection().Read(ctx, horseID)
		if err != nil {
			return 0, err
		}
		if len(current) > 0 {
			return 0, nil
		}
		items := synthBloodTests(i, horseID, ref)
		return len(items), s.bloodtests.Collection().Write(ctx, horseID, items)

	case records.DomainCare:
		current, err := s.care.Document().Read(ctx, horseID)
		if err != nil {
			return 0, err
		}
		if !current.Empty() {
			return 0, nil
		}
		book := synthCare(i, horseID, ref)
		return book.Total(), s.care.Document().Save(ctx, horseID, book)
	}
	return 0, fmt.Errorf("unknown domain %q", d)
}
