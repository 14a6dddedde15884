package records

import (
	"context"
	"encoding/json"
	"strings"
)

// Document guarda un único valor JSON (no un array) bajo la key del dominio.
// Lo usa care, que persiste un objeto categoría -> array.
type Document[T any] struct {
	deps      Deps
	domain    Domain
	normalize func(*T)
}

// NewDocument crea el documento; normalize (opcional) se aplica a todo lo que se lee,
// incluido el default vacío.
func NewDocument[T any](domain Domain, deps Deps, normalize func(*T)) *Document[T] {
	return &Document[T]{deps: deps.withDefaults(), domain: domain, normalize: normalize}
}

func (d *Document[T]) Domain() Domain { return d.domain }

// Load lee el documento; ausente, inválido o error del substrate => default normalizado.
func (d *Document[T]) Load(ctx context.Context, horseID string) T {
	v, err := d.Read(ctx, horseID)
	if err != nil {
		warnReadFailed(d.deps, horseID, d.domain, err)
	}
	return v
}

// Read es como Load pero devuelve el error del substrate (junto al default),
// para que quien reescribe el documento no pise datos que no pudo leer.
func (d *Document[T]) Read(ctx context.Context, horseID string) (T, error) {
	var v T
	raw, ok, err := readKey(ctx, d.deps, horseID, d.domain)
	if ok {
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			d.deps.Log.Warn("malformed document, using empty default", map[string]any{
				"horse_id": horseID,
				"domain":   string(d.domain),
				"err":      err.Error(),
			})
			var zero T
			v = zero
		}
	}
	if d.normalize != nil {
		d.normalize(&v)
	}
	return v, err
}

// Save reescribe el documento completo.
func (d *Document[T]) Save(ctx context.Context, horseID string, v T) error {
	if strings.TrimSpace(horseID) == "" {
		return ErrInvalidInput
	}
	if d.normalize != nil {
		d.normalize(&v)
	}
	err := writeKey(ctx, d.deps, horseID, d.domain, v)
	d.deps.Metrics.StoreOp(string(d.domain), "write", err)
	return err
}

// NewMeta genera id + createdAt con el generador y reloj del documento.
func (d *Document[T]) NewMeta() Meta {
	return Meta{ID: d.deps.IDs.NewID(), CreatedAt: d.deps.Now()}
}
