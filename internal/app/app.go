package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"horse-medical-records/internal/adapters/notify/lognotify"
	"horse-medical-records/internal/adapters/notify/shoutrrrnotify"
	"horse-medical-records/internal/adapters/roster/httproster"
	"horse-medical-records/internal/adapters/storage/memory"
	pg "horse-medical-records/internal/adapters/storage/postgres"
	s3kv "horse-medical-records/internal/adapters/storage/s3"
	"horse-medical-records/internal/adapters/storage/sqlite"
	"horse-medical-records/internal/domain/bloodtests"
	"horse-medical-records/internal/domain/care"
	"horse-medical-records/internal/domain/horses"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/domain/seed"
	"horse-medical-records/internal/domain/visits"
	"horse-medical-records/internal/domain/weights"
	"horse-medical-records/internal/platform/config"
	"horse-medical-records/internal/platform/logger"
	"horse-medical-records/internal/platform/metrics"
	"horse-medical-records/internal/ports/ids"
	"horse-medical-records/internal/ports/kv"
	"horse-medical-records/internal/ports/notify"
)

const rosterTimeout = 5 * time.Second

// App es el grafo de servicios compartido por la API y el CLI.
type App struct {
	Config  config.Config
	Log     logger.Logger
	Metrics *metrics.Metrics
	Deps    records.Deps

	Horses     *horses.Service
	Weights    *weights.Service
	Visits     *visits.Service
	BloodTests *bloodtests.Service
	Care       *care.Service
	Seeder     *seed.Seeder
	Notifier   notify.Notifier

	closers []func() error
}

// Parts permite armar el App con piezas ya construidas (tests).
// IDs, Now y Metrics son opcionales.
type Parts struct {
	Config  config.Config
	Log     logger.Logger
	KV      kv.Substrate
	Roster  horses.Roster
	IDs     ids.Generator
	Now     func() time.Time
	Metrics *metrics.Metrics
	// Notifier opcional; por defecto lognotify.
	Notifier notify.Notifier
}

// New abre el substrate y el roster según cfg y arma los servicios.
func New(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	substrate, closeFn, err := OpenSubstrate(ctx, cfg)
	if err != nil {
		return nil, err
	}

	roster, err := NewRoster(cfg)
	if err != nil {
		if closeFn != nil {
			_ = closeFn()
		}
		return nil, err
	}

	var closers []func() error
	if closeFn != nil {
		closers = append(closers, closeFn)
	}

	notifier := notify.Notifier(lognotify.New(log))
	if len(cfg.NotifyURLs) > 0 {
		push, err := shoutrrrnotify.New(shoutrrrnotify.Options{
			URLs:        cfg.NotifyURLs,
			MinSeverity: notify.Severity(cfg.NotifyMinSeverity),
			Log:         log,
		})
		if err != nil {
			for _, c := range closers {
				_ = c()
			}
			return nil, err
		}
		notifier = notify.Multi{notifier, push}
		closers = append(closers, func() error { push.Close(); return nil })
	}

	a := Assemble(Parts{Config: cfg, Log: log, KV: substrate, Roster: roster, Notifier: notifier})
	a.closers = closers

	log.Info("app ready", map[string]any{
		"storage": string(cfg.StorageDriver),
		"roster":  rosterKind(cfg),
		"push":    len(cfg.NotifyURLs) > 0,
	})
	return a, nil
}

func Assemble(p Parts) *App {
	if p.Log == nil {
		p.Log = logger.Nop()
	}
	if p.Metrics == nil {
		p.Metrics = metrics.New()
	}
	if p.Notifier == nil {
		p.Notifier = lognotify.New(p.Log)
	}

	deps := records.Deps{
		KV:      p.KV,
		IDs:     p.IDs,
		Now:     p.Now,
		Log:     p.Log,
		Metrics: p.Metrics,
	}

	a := &App{
		Config:     p.Config,
		Log:        p.Log,
		Metrics:    p.Metrics,
		Deps:       deps,
		Horses:     horses.NewService(p.Roster),
		Weights:    weights.NewService(deps),
		Visits:     visits.NewService(deps),
		BloodTests: bloodtests.NewService(deps),
		Care:       care.NewService(deps),
		Notifier:   p.Notifier,
	}
	a.Seeder = seed.New(a.Horses, a.Weights, a.Visits, a.BloodTests, a.Care, seed.Options{
		Horses:  p.Config.SeedHorses,
		Now:     p.Now,
		Log:     p.Log,
		Metrics: p.Metrics,
	})
	return a
}

// Close libera el substrate y espera los push en curso.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// OpenSubstrate construye el substrate configurado. closeFn puede ser nil.
func OpenSubstrate(ctx context.Context, cfg config.Config) (kv.Substrate, func() error, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory, "":
		return memory.NewKV(), nil, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return s, s.Close, nil

	case config.DriverPostgres:
		s, err := pg.Connect(ctx, cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return s, s.Close, nil

	case config.DriverS3:
		s, err := s3kv.New(ctx, s3kv.Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
			Prefix:    cfg.S3.Prefix,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open s3: %w", err)
		}
		return s, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// NewRoster usa el roster HTTP si ROSTER_URL está seteado; si no, el establo demo.
func NewRoster(cfg config.Config) (horses.Roster, error) {
	if cfg.RosterURL == "" {
		return memory.NewDemoRoster(), nil
	}
	r, err := httproster.New(cfg.RosterURL, httproster.Options{
		Timeout:  rosterTimeout,
		CacheTTL: cfg.RosterCacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	return r, nil
}

func rosterKind(cfg config.Config) string {
	if cfg.RosterURL == "" {
		return "demo"
	}
	return "http"
}
