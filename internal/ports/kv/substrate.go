package kv

import "context"

// Substrate es el almacenamiento key-value persistente donde viven las colecciones
// por caballo/dominio. Los valores son strings (JSON serializado).
//
// Get devuelve found=false si la key no existe; Remove de una key ausente es no-op.
type Substrate interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
