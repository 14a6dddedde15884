package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// StorageDriver selecciona el substrate key-value donde viven los registros.
type StorageDriver string

const (
	DriverMemory   StorageDriver = "memory"
	DriverSQLite   StorageDriver = "sqlite"
	DriverPostgres StorageDriver = "postgres"
	DriverS3       StorageDriver = "s3"
)

// Config agrupa toda la configuración del servicio y del CLI.
// Se carga desde variables de entorno.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	StorageDriver StorageDriver `env:"STORAGE_DRIVER" envDefault:"memory"`
	SQLitePath    string        `env:"SQLITE_PATH" envDefault:"horse-medical.db"`
	DBDSN         string        `env:"DB_DSN"`

	S3 S3Config `envPrefix:"S3_"`

	// Si viene, el roster de caballos se pide por HTTP; si no, se usa el establo demo.
	RosterURL      string        `env:"ROSTER_URL"`
	RosterCacheTTL time.Duration `env:"ROSTER_CACHE_TTL" envDefault:"30s"`

	// URLs shoutrrr (slack://, telegram://, ntfy://...). Vacío => solo log.
	NotifyURLs        []string `env:"NOTIFY_URLS" envSeparator:","`
	NotifyMinSeverity string   `env:"NOTIFY_MIN_SEVERITY" envDefault:"warning"`

	SeedOnStart bool `env:"SEED_ON_START" envDefault:"true"`
	SeedHorses  int  `env:"SEED_HORSES" envDefault:"15"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"horse-medical-records"`
}

type S3Config struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"ENDPOINT"`
	PathStyle bool   `env:"PATH_STYLE"`
	Prefix    string `env:"PREFIX"`
}

// Load lee la configuración del entorno del proceso.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return normalize(cfg)
}

// LoadFrom es como Load pero lee de un mapa (tests).
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return normalize(cfg)
}

func normalize(cfg Config) (Config, error) {
	cfg.StorageDriver = StorageDriver(strings.ToLower(strings.TrimSpace(string(cfg.StorageDriver))))
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = DriverMemory
	}

	switch cfg.StorageDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(cfg.DBDSN) == "" {
			return Config{}, fmt.Errorf("DB_DSN required for storage driver %q", cfg.StorageDriver)
		}
	case DriverS3:
		if strings.TrimSpace(cfg.S3.Bucket) == "" {
			return Config{}, fmt.Errorf("S3_BUCKET required for storage driver %q", cfg.StorageDriver)
		}
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.SeedHorses < 0 {
		cfg.SeedHorses = 0
	}

	urls := cfg.NotifyURLs[:0]
	for _, u := range cfg.NotifyURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	cfg.NotifyURLs = urls

	switch sev := strings.ToLower(strings.TrimSpace(cfg.NotifyMinSeverity)); sev {
	case "info", "success", "warning", "error":
		cfg.NotifyMinSeverity = sev
	default:
		return Config{}, fmt.Errorf("invalid NOTIFY_MIN_SEVERITY %q", cfg.NotifyMinSeverity)
	}
	return cfg, nil
}

// Addr devuelve la dirección de escucha del server HTTP.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
