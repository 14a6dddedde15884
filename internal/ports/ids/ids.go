package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator asigna ids únicos a registros nuevos.
type Generator interface {
	NewID() string
}

// UUID genera ids v4 con google/uuid.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Counter genera ids secuenciales con prefijo ("rec-1", "rec-2", ...).
// Determinístico, pensado para tests.
type Counter struct {
	Prefix string
	n      atomic.Uint64
}

func (c *Counter) NewID() string {
	prefix := c.Prefix
	if prefix == "" {
		prefix = "rec"
	}
	return fmt.Sprintf("%s-%d", prefix, c.n.Add(1))
}
