package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"horse-medical-records/internal/ports/kv"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// KV implementa kv.Substrate sobre una tabla simple key/value en Postgres.
type KV struct {
	db *sql.DB
}

var _ kv.Substrate = (*KV)(nil)

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Connect abre el pool con pgx (database/sql), verifica la conexión y crea la
// tabla. El KV queda dueño del pool: cerrar con Close.
func Connect(ctx context.Context, dsn string) (*KV, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open pgx: %w", err)
	}

	// pool chico: un solo writer lógico (la UI)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := NewKV(db)
	if err := s.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *KV) Close() error {
	return s.db.Close()
}

// EnsureSchema crea la tabla si no existe. Idempotente.
func (s *KV) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS medical_kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create medical_kv: %w", err)
	}
	return nil
}

func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM medical_kv WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (s *KV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO medical_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, value)
	return err
}

func (s *KV) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM medical_kv WHERE key = $1`, key)
	return err
}
