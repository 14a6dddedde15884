package records

import (
	"context"
	"errors"
	"strings"
)

// ResetHorse borra las cuatro keys del caballo. Cada borrado es independiente
// e idempotente; se intentan todos y se devuelven los errores juntos.
func ResetHorse(ctx context.Context, deps Deps, horseID string) error {
	if strings.TrimSpace(horseID) == "" {
		return ErrInvalidInput
	}
	deps = deps.withDefaults()

	var errs []error
	for _, d := range Domains {
		err := deps.KV.Remove(ctx, Key(horseID, d))
		deps.Metrics.StoreOp(string(d), "reset", err)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	deps.Log.Info("horse records reset", map[string]any{"horse_id": horseID})
	return nil
}
