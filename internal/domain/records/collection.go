package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"horse-medical-records/internal/platform/logger"
	"horse-medical-records/internal/platform/metrics"
	"horse-medical-records/internal/ports/ids"
	"horse-medical-records/internal/ports/kv"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Deps son las dependencias compartidas por todas las colecciones.
type Deps struct {
	KV      kv.Substrate
	IDs     ids.Generator
	Now     func() time.Time
	Log     logger.Logger
	Metrics *metrics.Metrics
}

func (d Deps) withDefaults() Deps {
	if d.IDs == nil {
		d.IDs = ids.UUID{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return d
}

// Collection es el CRUD genérico de un dominio guardado como array JSON
// (weights, visits, bloodtests). El índice 0 es el último insertado.
type Collection[T any, P Stamper[T]] struct {
	deps   Deps
	domain Domain
}

func NewCollection[T any, P Stamper[T]](domain Domain, deps Deps) *Collection[T, P] {
	return &Collection[T, P]{deps: deps.withDefaults(), domain: domain}
}

func (c *Collection[T, P]) Domain() Domain { return c.domain }

// List devuelve la colección en orden de storage. Nunca falla: si la key no existe,
// el JSON está roto o el substrate da error, devuelve vacío.
func (c *Collection[T, P]) List(ctx context.Context, horseID string) []T {
	items, err := c.Read(ctx, horseID)
	if err != nil {
		warnReadFailed(c.deps, horseID, c.domain, err)
		return make([]T, 0)
	}
	return items
}

// Read es la lectura de los caminos de escritura: el error del substrate se
// devuelve en lugar de tratarse como colección vacía. Ausente o JSON roto => vacío.
func (c *Collection[T, P]) Read(ctx context.Context, horseID string) ([]T, error) {
	out := make([]T, 0)
	raw, ok, err := readKey(ctx, c.deps, horseID, c.domain)
	if err != nil {
		return out, err
	}
	if !ok {
		return out, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.deps.Log.Warn("malformed collection, using empty default", map[string]any{
			"horse_id": horseID,
			"domain":   string(c.domain),
			"err":      err.Error(),
		})
		return out, nil
	}
	return append(out, items...), nil
}

// Append asigna id y createdAt, lo antepone y reescribe la colección completa.
func (c *Collection[T, P]) Append(ctx context.Context, horseID string, rec T) (T, error) {
	if strings.TrimSpace(horseID) == "" {
		var zero T
		return zero, ErrInvalidInput
	}

	P(&rec).Stamp(Meta{
		ID:        c.deps.IDs.NewID(),
		CreatedAt: c.deps.Now(),
	})

	items, err := c.Read(ctx, horseID)
	if err != nil {
		c.deps.Metrics.StoreOp(string(c.domain), "append", err)
		var zero T
		return zero, fmt.Errorf("read %s: %w", c.domain, err)
	}
	items = append([]T{rec}, items...)

	err = writeKey(ctx, c.deps, horseID, c.domain, items)
	c.deps.Metrics.StoreOp(string(c.domain), "append", err)
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Write reemplaza la colección completa tal cual (ids/timestamps ya asignados).
// Solo lo usa el seeder.
func (c *Collection[T, P]) Write(ctx context.Context, horseID string, items []T) error {
	if strings.TrimSpace(horseID) == "" {
		return ErrInvalidInput
	}
	if items == nil {
		items = []T{}
	}
	err := writeKey(ctx, c.deps, horseID, c.domain, items)
	c.deps.Metrics.StoreOp(string(c.domain), "write", err)
	return err
}

func readKey(ctx context.Context, deps Deps, horseID string, d Domain) (string, bool, error) {
	raw, found, err := deps.KV.Get(ctx, Key(horseID, d))
	deps.Metrics.StoreOp(string(d), "list", err)
	if err != nil {
		return "", false, err
	}
	if !found || strings.TrimSpace(raw) == "" {
		return "", false, nil
	}
	return raw, true, nil
}

func warnReadFailed(deps Deps, horseID string, d Domain, err error) {
	deps.Log.Warn("substrate read failed, using empty default", map[string]any{
		"horse_id": horseID,
		"domain":   string(d),
		"err":      err.Error(),
	})
}

func writeKey(ctx context.Context, deps Deps, horseID string, d Domain, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return deps.KV.Set(ctx, Key(horseID, d), string(b))
}
