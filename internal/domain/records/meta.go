package records

import "time"

// Meta son los campos que todo registro recibe al crearse y que no cambian después.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stamp asigna id y createdAt. Lo llama el store (o el seeder), nunca la UI.
func (m *Meta) Stamp(x Meta) { *m = x }

// Stamper lo cumple cualquier *T que embeba Meta.
type Stamper[T any] interface {
	*T
	Stamp(Meta)
}
