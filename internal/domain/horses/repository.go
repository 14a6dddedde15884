package horses

import "context"

// Roster es el proveedor externo de caballos (read-only).
// List devuelve el orden del roster; el seeder depende de ese orden.
type Roster interface {
	List(ctx context.Context) ([]Horse, error)
	GetByID(ctx context.Context, id string) (Horse, error)
}
